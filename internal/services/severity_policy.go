package services

import "github.com/you/escalationsvc/domain"

// SeverityPolicyImpl implements domain.SeverityPolicy. The threshold is
// resolved once at construction; the rule is total over all integers,
// validation of the 1-5 range belongs to callers.
type SeverityPolicyImpl struct {
	threshold int
}

// NewSeverityPolicy creates a severity policy with the given threshold.
func NewSeverityPolicy(threshold int) domain.SeverityPolicy {
	return &SeverityPolicyImpl{threshold: threshold}
}

// ShouldEscalate implements domain.SeverityPolicy. The boundary is
// inclusive: a rating equal to the threshold escalates.
func (p *SeverityPolicyImpl) ShouldEscalate(severityRating int) bool {
	return severityRating >= p.threshold
}
