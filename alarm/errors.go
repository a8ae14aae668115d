package alarm

import "fmt"

//报警解码失败，事件被丢弃
type DecodeError struct {
	Command int32
	Reason  string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("报警解码失败(0x%x) %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("报警解码失败(0x%x) %s", e.Command, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
