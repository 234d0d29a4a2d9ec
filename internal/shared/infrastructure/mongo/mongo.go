package mongo

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const defaultConnectTimeout = 3 * time.Second

// MatchDB 对局记录所在的库，连同释放连接的方法。
type MatchDB struct {
	*mongo.Database
	client *mongo.Client
}

// Close 断开底层连接；可以重复调用。
func (d *MatchDB) Close(ctx context.Context) error {
	if d == nil || d.client == nil {
		return nil
	}
	err := d.client.Disconnect(ctx)
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return nil
	}
	return err
}

// Open 连接并 ping 一次，成功后返回配置里的对局库；失败时已断开，不需要调用方清理。
func Open(cfg serverconfig.MongoDBConfig, l *zap.Logger) (*MatchDB, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongodb uri is empty")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongodb database is empty")
	}
	if l == nil {
		l = zap.NewNop()
	}

	timeout := time.Duration(cfg.ConnectTimeoutS) * time.Second
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetAppName("conquest-world"))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	l.Info("open mongodb success",
		zap.String("uri", redactURI(cfg.URI)),
		zap.String("database", cfg.Database),
	)
	return &MatchDB{Database: client.Database(cfg.Database), client: client}, nil
}

// redactURI 日志里不输出密码；解析失败时整体隐藏。
func redactURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
