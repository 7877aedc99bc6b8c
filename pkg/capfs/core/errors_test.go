package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessagesCarryPath(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			"not found",
			NewNotFound("/tmp/x", "delete directory", nil),
			[]string{"/tmp/x", "delete directory", "not found"},
		},
		{
			"invalid argument",
			NewInvalidArgument("/tmp/x", "unknown data type 'toml'", nil),
			[]string{"/tmp/x", "toml"},
		},
		{
			"invalid state with cause",
			NewInvalidState("/tmp/x", "write file", errors.New("disk full")),
			[]string{"/tmp/x", "write file", "disk full"},
		},
		{
			"content unparseable",
			NewContentUnparseable("/tmp/x", "json", errors.New("unexpected token")),
			[]string{"/tmp/x", "json", "unexpected token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("error message %q should contain %q", msg, want)
				}
			}
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	base := NewNotFound("/tmp/x", "read file", errors.New("ENOENT"))
	wrapped := fmt.Errorf("loading config: %w", base)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
	if IsInvalidState(wrapped) {
		t.Error("IsInvalidState should not match a NotFoundError")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("underlying")
	tests := []struct {
		name string
		err  error
	}{
		{"not found", NewNotFound("/p", "read file", cause)},
		{"invalid argument", NewInvalidArgument("/p", "bad", cause)},
		{"invalid state", NewInvalidState("/p", "write file", cause)},
		{"content unparseable", NewContentUnparseable("/p", "yaml", cause)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("%v should wrap its cause", tt.err)
			}
		})
	}
}
