package create

// Step identifies one creation step for policy lookup and warning reporting.
type Step string

const (
	StepNameCheck      Step = "name-check"
	StepSkeleton       Step = "skeleton"
	StepMetadata       Step = "metadata"
	StepReadme         Step = "readme"
	StepLicense        Step = "license"
	StepVersionControl Step = "version-control"
	StepRemoteRepo     Step = "remote-repository"
	StepDocSite        Step = "doc-site"
)

// FailurePolicy decides what a step failure does to the run.
type FailurePolicy int

const (
	// PolicySoft converts the failure to a warning and continues.
	PolicySoft FailurePolicy = iota
	// PolicyHard aborts the whole run.
	PolicyHard
)

// stepPolicies is the single source of truth for the failure behavior of
// every step. Skeleton and metadata are prerequisites with no fallback;
// everything else degrades to a warning.
var stepPolicies = map[Step]FailurePolicy{
	StepNameCheck:      PolicySoft,
	StepSkeleton:       PolicyHard,
	StepMetadata:       PolicyHard,
	StepReadme:         PolicySoft,
	StepLicense:        PolicySoft,
	StepVersionControl: PolicySoft,
	StepRemoteRepo:     PolicySoft,
	StepDocSite:        PolicySoft,
}

// policyFor returns the failure policy of a step. Unknown steps are treated
// as hard so a missing table entry cannot silently downgrade a failure.
func policyFor(step Step) FailurePolicy {
	if p, ok := stepPolicies[step]; ok {
		return p
	}
	return PolicyHard
}
