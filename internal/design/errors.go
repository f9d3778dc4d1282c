package design

import (
	"errors"

	"grnascan/internal/pattern"
)

var (
	ErrIncorrectDNASequence = errors.New("incorrect DNA sequence provided")
	ErrNoGuidesFound        = errors.New("no compatible gRNAs found")
	ErrInvalidPAM           = errors.New("PAM sequence is not valid")
	ErrInvalidParameters    = errors.New("invalid design parameters")

	// ErrInvalidPattern is the umbrella for every motif compile failure.
	ErrInvalidPattern = pattern.ErrInvalidPattern

	ErrInvalidGRNAExclusionPattern = errors.New("gRNA exclusion pattern is not valid")
	ErrInvalidGRNAInclusionPattern = errors.New("gRNA inclusion pattern is not valid")
)
