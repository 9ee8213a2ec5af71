package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xatsw/internal/prompt"
	"xatsw/pkg/logging"
)

const promptLabel = "Profile name"

// InvalidNameError explains why a profile name was rejected.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid profile name %q: %s", e.Name, e.Reason)
}

// ValidateExplicit checks a name given on the command line. It only rejects
// names that would leave the storage directory.
func ValidateExplicit(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	case name == "." || name == "..":
		return &InvalidNameError{Name: name, Reason: "name refers to a directory"}
	case strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/'):
		return &InvalidNameError{Name: name, Reason: "name contains a path separator"}
	}
	return nil
}

// NewValidator returns the default check for prompted names: the name must
// be a plain file name and must not exist yet inside storageDir.
func NewValidator(storageDir string) prompt.ValidateFunc {
	return func(name string) error {
		if err := ValidateExplicit(name); err != nil {
			return err
		}
		_, err := os.Lstat(filepath.Join(storageDir, name))
		if err == nil {
			return &InvalidNameError{Name: name, Reason: "a profile with this name already exists"}
		}
		if !errors.Is(err, os.ErrNotExist) {
			return &InvalidNameError{Name: name, Reason: err.Error()}
		}
		return nil
	}
}

// Namer resolves profile names, prompting when none was given.
type Namer struct {
	prompter prompt.Prompter
	// NewValidator builds the validator for prompted names; defaults to
	// the package-level NewValidator.
	NewValidator func(storageDir string) prompt.ValidateFunc
	// Suggestion is offered as the default answer when prompting.
	Suggestion string
}

// NewNamer creates a Namer that asks p when no explicit name is given.
func NewNamer(p prompt.Prompter) *Namer {
	return &Namer{prompter: p, NewValidator: NewValidator}
}

// Resolve returns explicit when it is set, otherwise a name entered by the
// user and accepted by the validator for storageDir.
func (n *Namer) Resolve(explicit, storageDir string) (string, error) {
	if explicit != "" {
		if err := ValidateExplicit(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}

	if n.prompter == nil {
		return "", errors.New("no profile name given and input is not interactive")
	}

	var validate prompt.ValidateFunc
	if n.NewValidator != nil {
		validate = n.NewValidator(storageDir)
	}

	name, err := n.prompter.Line(promptLabel, n.Suggestion, validate)
	if err != nil {
		return "", fmt.Errorf("failed to read profile name: %w", err)
	}
	logging.Debug("Profile", "Resolved profile name %q for %s", name, storageDir)
	return name, nil
}
