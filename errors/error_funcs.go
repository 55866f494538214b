package errors

import (
	"os"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}

// Is reports whether any error in err's chain matches target.
// It understands marks added by the builder.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
