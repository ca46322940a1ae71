package config

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	configValidationCode = "CONFIG_VALIDATION_FAILED"
	sourceTreeCode       = "SOURCE_TREE_NOT_FOUND"
)

// ErrSourceTreeNotFound reports that no source tree exists at or above Root.
var ErrSourceTreeNotFound = errors.New("source tree not found")

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
		WithTextCode(configValidationCode)
}

func wrapSourceTreeError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
		WithTextCode(sourceTreeCode)
}
