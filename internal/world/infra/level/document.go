package level

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app"

	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Document 一个关卡文件。
type Document struct {
	Name      string         `yaml:"name" mapstructure:"name"`
	Buildings []BuildingSpec `yaml:"buildings" mapstructure:"buildings"`
}

// BuildingSpec 关卡里的一个建筑：(X, Y) 是占地左上角。
type BuildingSpec struct {
	Kind       string  `yaml:"kind" mapstructure:"kind"`
	Preset     string  `yaml:"preset" mapstructure:"preset"`
	X          float64 `yaml:"x" mapstructure:"x"`
	Y          float64 `yaml:"y" mapstructure:"y"`
	Population int     `yaml:"population" mapstructure:"population"`
	Team       string  `yaml:"team" mapstructure:"team"`
}

//go:embed level.schema.json
var levelSchema string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("level.schema.json", strings.NewReader(levelSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("level.schema.json")
	})
	return schema, schemaErr
}

// Parse 解析并校验一个 YAML 关卡。
// 先转成 JSON 值做 schema 校验，再用 mapstructure 解码到 Document。
func Parse(data []byte) (Document, error) {
	var doc Document

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return doc, app.ErrInvalidLevel.WithReason(app.ReasonLevelSyntax).WithData("detail", err.Error())
	}
	value, err := toJSONValue(raw)
	if err != nil {
		return doc, app.ErrInvalidLevel.WithReason(app.ReasonLevelSyntax).WithData("detail", err.Error())
	}

	s, err := compiledSchema()
	if err != nil {
		return doc, app.Wrap(app.CodeInternalServer, "关卡 schema 编译失败", err)
	}
	if err := s.Validate(value); err != nil {
		return doc, app.ErrInvalidLevel.WithReason(app.ReasonLevelSchema).WithData("detail", err.Error())
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return doc, app.Wrap(app.CodeInternalServer, "关卡解码器创建失败", err)
	}
	if err := dec.Decode(value); err != nil {
		return doc, app.ErrInvalidLevel.WithReason(app.ReasonLevelSchema).WithData("detail", err.Error())
	}
	return doc, nil
}

// toJSONValue 把 yaml 解出的值规整成 encoding/json 的形态（map[string]any、float64）。
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
