package retry

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// transientErrnos are process start failures that usually clear up.
var transientErrnos = []syscall.Errno{
	syscall.EAGAIN,
	syscall.EBUSY,
	syscall.ETXTBSY,
	syscall.EMFILE,
	syscall.ENFILE,
	syscall.EINTR,
}

// transientPatterns match the same conditions when the errno was lost in
// wrapping, plus the Windows sharing violation text.
var transientPatterns = []string{
	"resource temporarily unavailable",
	"text file busy",
	"device or resource busy",
	"too many open files",
	"interrupted system call",
	"being used by another process",
}

// ExecErrorClassifier implements winentity.ErrorClassifier for failures to
// start an external process.
type ExecErrorClassifier struct{}

// NewExecErrorClassifier creates a classifier for process start errors.
func NewExecErrorClassifier() *ExecErrorClassifier {
	return &ExecErrorClassifier{}
}

var _ winentity.ErrorClassifier = (*ExecErrorClassifier)(nil)

// IsTransient reports whether starting the process again may succeed.
func (c *ExecErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, winentity.ErrUnsupportedPlatform) {
		return false
	}

	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}
