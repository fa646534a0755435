package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadJSON reads a JSON file into target.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadFailed, path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrMsgUnmarshalFailed, err)
	}
	return nil
}

// SaveJSON writes data as indented JSON, creating the parent directory if needed.
func SaveJSON(path string, data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalFailed, err)
	}
	return writeFile(path, b)
}

func writeFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf(ErrMsgCreateDirFailed, dir, err)
	}
	if err := os.WriteFile(path, b, filePerm); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, path, err)
	}
	return nil
}
