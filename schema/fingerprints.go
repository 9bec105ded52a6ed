package schema

// FingerprintMatch is a file whose fingerprint matched, with the latest files of its mod.
type FingerprintMatch struct {
	ID          int    `json:"id"`
	File        File   `json:"file"`
	LatestFiles []File `json:"latestFiles"`
}

// FingerprintMatchesResult is the service's answer to an exact fingerprint lookup.
type FingerprintMatchesResult struct {
	IsCacheBuilt             bool               `json:"isCacheBuilt"`
	ExactMatches             []FingerprintMatch `json:"exactMatches"`
	ExactFingerprints        []int64            `json:"exactFingerprints"`
	PartialMatches           []FingerprintMatch `json:"partialMatches"`
	PartialMatchFingerprints map[string][]int64 `json:"partialMatchFingerprints"`
	AdditionalProperties     []int64            `json:"additionalProperties"`
	InstalledFingerprints    []int64            `json:"installedFingerprints"`
	UnmatchedFingerprints    []int64            `json:"unmatchedFingerprints"`
}

// FolderFingerprint is the request record of a fuzzy lookup: one folder and
// the fingerprints of the files inside it.
type FolderFingerprint struct {
	Foldername   string  `json:"foldername"`
	Fingerprints []int64 `json:"fingerprints"`
}

// FingerprintFuzzyMatch is a file matched from a folder's fingerprint set.
type FingerprintFuzzyMatch struct {
	ID           int     `json:"id"`
	File         File    `json:"file"`
	LatestFiles  []File  `json:"latestFiles"`
	Fingerprints []int64 `json:"fingerprints"`
}

// FingerprintFuzzyMatchResult is the service's answer to a fuzzy lookup.
type FingerprintFuzzyMatchResult struct {
	FuzzyMatches []FingerprintFuzzyMatch `json:"fuzzyMatches"`
}
