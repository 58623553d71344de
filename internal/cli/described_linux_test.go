//go:build linux && (amd64 || 386 || arm || arm64)

package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestErrno_SimpleLinux(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "number and alias",
			args: []string{"11", "EWOULDBLOCK"},
			want: []string{
				"EAGAIN 11 Resource temporarily unavailable (may be the same value as EWOULDBLOCK) (POSIX.1-2001).",
				"EWOULDBLOCK 11 Operation would block (may be same value as EAGAIN) (POSIX.1-2001).",
			},
		},
		{
			name: "libc text",
			args: []string{"--libc", "2", "ENOENT"},
			want: []string{
				"ENOENT 2 No such file or directory",
				"ENOENT 2 No such file or directory",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustExecute(t, NewErrnoCommand(), append([]string{"--simple"}, tt.args...)...)
			if diff := cmp.Diff(tt.want, lines(out)); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSignal_SimpleLinux(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "number and name",
			args: []string{"9", "SIGTERM"},
			want: []string{
				"SIGKILL 9 Kill signal",
				"SIGTERM 15 Termination signal",
			},
		},
		{
			name: "exit status",
			args: []string{"-s", "130", "137", "200"},
			want: []string{
				"SIGINT 2 Interrupt from keyboard",
				"SIGKILL 9 Kill signal",
				"- 72 Unknown signal",
			},
		},
		{
			name: "status leaves names alone",
			args: []string{"--status", "SIGINT"},
			want: []string{"SIGINT 2 Interrupt from keyboard"},
		},
		{
			name: "libc text",
			args: []string{"--libc", "2"},
			want: []string{"SIGINT 2 Interrupt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustExecute(t, NewSignalCommand(), append([]string{"--simple"}, tt.args...)...)
			if diff := cmp.Diff(tt.want, lines(out)); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSignal_LibcFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LOOKUP_LIBC", "1")

	out := mustExecute(t, NewSignalCommand(), "--simple", "9")
	assert.Equal(t, "SIGKILL 9 Killed\n", out)

	out = mustExecute(t, NewSignalCommand(), "--simple", "--libc=false", "9")
	assert.Equal(t, "SIGKILL 9 Kill signal\n", out)
}
