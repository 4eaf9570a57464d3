package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadInputFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		fp := filepath.Join(dir, name)
		if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return fp
	}

	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr error
	}{
		{
			name: "lines",
			path: write("lst.txt", "https://www.are.na/block/1\r\n\n  https://www.are.na/block/2/  \n\t\nhttps://www.are.na/block/3"),
			want: []string{"https://www.are.na/block/1", "https://www.are.na/block/2/", "https://www.are.na/block/3"},
		},
		{name: "missing", path: filepath.Join(dir, "nope.txt"), wantErr: ErrInputMissing},
		{name: "directory", path: dir, wantErr: ErrInputMissing},
		{name: "empty", path: write("empty.txt", ""), wantErr: ErrInputEmpty},
		{name: "blank", path: write("blank.txt", "\n  \n\t\n"), wantErr: ErrInputEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInputFile(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("readInputFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readInputFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("readInputFile() = %q, want %q", got, tt.want)
			}
		})
	}
}
