package messages

// FailResp actor 拒绝请求时的统一回复，Err 保留原始错误码。
type FailResp struct {
	Err error
}

func (f *FailResp) Error() string {
	if f == nil || f.Err == nil {
		return "<nil>"
	}
	return f.Err.Error()
}

func (f *FailResp) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}
