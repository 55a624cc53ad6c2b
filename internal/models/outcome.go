package models

import "errors"

var errMissingResult = errors.New("no summary was produced")

// FileOutcome records what happened to one artifact of a batch.
// Exactly one of Data and Err is set.
type FileOutcome struct {
	FileName string
	Data     *SummaryResult
	Err      error
}

// Succeeded builds a success outcome.
func Succeeded(fileName string, data *SummaryResult) FileOutcome {
	return FileOutcome{FileName: fileName, Data: data}
}

// Failed builds a failure outcome.
func Failed(fileName string, err error) FileOutcome {
	return FileOutcome{FileName: fileName, Err: err}
}

// Success reports whether the outcome carries a result. An outcome with
// neither a result nor an error counts as failed.
func (o FileOutcome) Success() bool {
	return o.Err == nil && o.Data != nil
}

// ErrorMessage is the user-facing message of a failed outcome, "" on success.
func (o FileOutcome) ErrorMessage() string {
	switch {
	case o.Err != nil:
		return o.Err.Error()
	case o.Data == nil:
		return errMissingResult.Error()
	}
	return ""
}
