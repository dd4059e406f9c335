package jsonx

import (
	"io"

	"github.com/bytedance/sonic"
)

var Marshal = sonic.Marshal

// WriteLine 将 v 编码为一行 JSON 写入 w（JSON Lines）
func WriteLine(w io.Writer, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
