package fileurl

import (
	"os"
	"path/filepath"
	"strings"
)

// IsFile determines if the given path is a file
// IsFile 判断所给路径是否为文件
func IsFile(path string) bool {
	return !IsDir(path)
}

// IsDir determines if the given path is a directory
// IsDir 判断所给路径是否为文件夹
func IsDir(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// IsExist determines if the path exists
// IsExist 判断路径是否存在
func IsExist(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory of the given file path
// CreatePath 创建所给文件路径的父级目录
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}

// PathSuffixCheckAdd appends suffix if the path does not end with it
// PathSuffixCheckAdd 路径不以 suffix 结尾时追加 suffix
func PathSuffixCheckAdd(path string, suffix string) string {
	if !strings.HasSuffix(path, suffix) {
		return path + suffix
	}
	return path
}
