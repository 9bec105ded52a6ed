package schema

import "fmt"

// Enumerations are closed: Valid reports whether a value is a declared member,
// and Decode rejects anything else.

func enumString[T ~int](names map[T]string, v T, typ string) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", typ, int(v))
}

// CoreAPIStatus is a game's API visibility.
type CoreAPIStatus int

const (
	CoreAPIStatusPrivate CoreAPIStatus = 1
	CoreAPIStatusPublic  CoreAPIStatus = 2
)

var coreAPIStatusNames = map[CoreAPIStatus]string{
	CoreAPIStatusPrivate: "Private",
	CoreAPIStatusPublic:  "Public",
}

func (s CoreAPIStatus) String() string { return enumString(coreAPIStatusNames, s, "CoreAPIStatus") }
func (s CoreAPIStatus) Valid() bool    { _, ok := coreAPIStatusNames[s]; return ok }

// CoreStatus is a game's moderation status.
type CoreStatus int

const (
	CoreStatusDraft         CoreStatus = 1
	CoreStatusTest          CoreStatus = 2
	CoreStatusPendingReview CoreStatus = 3
	CoreStatusRejected      CoreStatus = 4
	CoreStatusApproved      CoreStatus = 5
	CoreStatusLive          CoreStatus = 6
)

var coreStatusNames = map[CoreStatus]string{
	CoreStatusDraft:         "Draft",
	CoreStatusTest:          "Test",
	CoreStatusPendingReview: "PendingReview",
	CoreStatusRejected:      "Rejected",
	CoreStatusApproved:      "Approved",
	CoreStatusLive:          "Live",
}

func (s CoreStatus) String() string { return enumString(coreStatusNames, s, "CoreStatus") }
func (s CoreStatus) Valid() bool    { _, ok := coreStatusNames[s]; return ok }

// GameVersionStatus is the status of a single game version.
type GameVersionStatus int

const (
	GameVersionStatusApproved GameVersionStatus = 1
	GameVersionStatusDeleted  GameVersionStatus = 2
	GameVersionStatusNew      GameVersionStatus = 3
)

var gameVersionStatusNames = map[GameVersionStatus]string{
	GameVersionStatusApproved: "Approved",
	GameVersionStatusDeleted:  "Deleted",
	GameVersionStatusNew:      "New",
}

func (s GameVersionStatus) String() string {
	return enumString(gameVersionStatusNames, s, "GameVersionStatus")
}
func (s GameVersionStatus) Valid() bool { _, ok := gameVersionStatusNames[s]; return ok }

// GameVersionTypeStatus is the status of a game version type.
type GameVersionTypeStatus int

const (
	GameVersionTypeStatusNormal  GameVersionTypeStatus = 1
	GameVersionTypeStatusDeleted GameVersionTypeStatus = 2
)

var gameVersionTypeStatusNames = map[GameVersionTypeStatus]string{
	GameVersionTypeStatusNormal:  "Normal",
	GameVersionTypeStatusDeleted: "Deleted",
}

func (s GameVersionTypeStatus) String() string {
	return enumString(gameVersionTypeStatusNames, s, "GameVersionTypeStatus")
}
func (s GameVersionTypeStatus) Valid() bool { _, ok := gameVersionTypeStatusNames[s]; return ok }

// ModStatus is a mod's moderation status.
type ModStatus int

const (
	ModStatusNew             ModStatus = 1
	ModStatusChangesRequired ModStatus = 2
	ModStatusUnderSoftReview ModStatus = 3
	ModStatusApproved        ModStatus = 4
	ModStatusRejected        ModStatus = 5
	ModStatusChangesMade     ModStatus = 6
	ModStatusInactive        ModStatus = 7
	ModStatusAbandoned       ModStatus = 8
	ModStatusDeleted         ModStatus = 9
	ModStatusUnderReview     ModStatus = 10
)

var modStatusNames = map[ModStatus]string{
	ModStatusNew:             "New",
	ModStatusChangesRequired: "ChangesRequired",
	ModStatusUnderSoftReview: "UnderSoftReview",
	ModStatusApproved:        "Approved",
	ModStatusRejected:        "Rejected",
	ModStatusChangesMade:     "ChangesMade",
	ModStatusInactive:        "Inactive",
	ModStatusAbandoned:       "Abandoned",
	ModStatusDeleted:         "Deleted",
	ModStatusUnderReview:     "UnderReview",
}

func (s ModStatus) String() string { return enumString(modStatusNames, s, "ModStatus") }
func (s ModStatus) Valid() bool    { _, ok := modStatusNames[s]; return ok }

// ModsSearchSortField selects the ordering of a mod search.
type ModsSearchSortField int

const (
	SortFieldFeatured         ModsSearchSortField = 1
	SortFieldPopularity       ModsSearchSortField = 2
	SortFieldLastUpdated      ModsSearchSortField = 3
	SortFieldName             ModsSearchSortField = 4
	SortFieldAuthor           ModsSearchSortField = 5
	SortFieldTotalDownloads   ModsSearchSortField = 6
	SortFieldCategory         ModsSearchSortField = 7
	SortFieldGameVersion      ModsSearchSortField = 8
	SortFieldEarlyAccess      ModsSearchSortField = 9
	SortFieldFeaturedReleased ModsSearchSortField = 10
	SortFieldReleasedDate     ModsSearchSortField = 11
	SortFieldRating           ModsSearchSortField = 12
)

var sortFieldNames = map[ModsSearchSortField]string{
	SortFieldFeatured:         "Featured",
	SortFieldPopularity:       "Popularity",
	SortFieldLastUpdated:      "LastUpdated",
	SortFieldName:             "Name",
	SortFieldAuthor:           "Author",
	SortFieldTotalDownloads:   "TotalDownloads",
	SortFieldCategory:         "Category",
	SortFieldGameVersion:      "GameVersion",
	SortFieldEarlyAccess:      "EarlyAccess",
	SortFieldFeaturedReleased: "FeaturedReleased",
	SortFieldReleasedDate:     "ReleasedDate",
	SortFieldRating:           "Rating",
}

func (f ModsSearchSortField) String() string {
	return enumString(sortFieldNames, f, "ModsSearchSortField")
}
func (f ModsSearchSortField) Valid() bool { _, ok := sortFieldNames[f]; return ok }

// ModLoaderInstallMethod is how a mod loader build is installed.
type ModLoaderInstallMethod int

const (
	InstallMethodForgeInstaller   ModLoaderInstallMethod = 1
	InstallMethodForgeJarInstall  ModLoaderInstallMethod = 2
	InstallMethodForgeInstallerV2 ModLoaderInstallMethod = 3
)

var installMethodNames = map[ModLoaderInstallMethod]string{
	InstallMethodForgeInstaller:   "ForgeInstaller",
	InstallMethodForgeJarInstall:  "ForgeJarInstall",
	InstallMethodForgeInstallerV2: "ForgeInstaller_v2",
}

func (m ModLoaderInstallMethod) String() string {
	return enumString(installMethodNames, m, "ModLoaderInstallMethod")
}
func (m ModLoaderInstallMethod) Valid() bool { _, ok := installMethodNames[m]; return ok }

// ModLoaderType identifies a mod loader.
type ModLoaderType int

const (
	ModLoaderAny        ModLoaderType = 0
	ModLoaderForge      ModLoaderType = 1
	ModLoaderCauldron   ModLoaderType = 2
	ModLoaderLiteLoader ModLoaderType = 3
	ModLoaderFabric     ModLoaderType = 4
	ModLoaderQuilt      ModLoaderType = 5
	ModLoaderNeoForge   ModLoaderType = 6
)

var modLoaderNames = map[ModLoaderType]string{
	ModLoaderAny:        "Any",
	ModLoaderForge:      "Forge",
	ModLoaderCauldron:   "Cauldron",
	ModLoaderLiteLoader: "LiteLoader",
	ModLoaderFabric:     "Fabric",
	ModLoaderQuilt:      "Quilt",
	ModLoaderNeoForge:   "NeoForge",
}

func (t ModLoaderType) String() string { return enumString(modLoaderNames, t, "ModLoaderType") }
func (t ModLoaderType) Valid() bool    { _, ok := modLoaderNames[t]; return ok }

// FileRelationType is how a file depends on another mod.
type FileRelationType int

const (
	RelationEmbeddedLibrary    FileRelationType = 1
	RelationOptionalDependency FileRelationType = 2
	RelationRequiredDependency FileRelationType = 3
	RelationTool               FileRelationType = 4
	RelationIncompatible       FileRelationType = 5
	RelationInclude            FileRelationType = 6
)

var relationNames = map[FileRelationType]string{
	RelationEmbeddedLibrary:    "EmbeddedLibrary",
	RelationOptionalDependency: "OptionalDependency",
	RelationRequiredDependency: "RequiredDependency",
	RelationTool:               "Tool",
	RelationIncompatible:       "Incompatible",
	RelationInclude:            "Include",
}

func (r FileRelationType) String() string { return enumString(relationNames, r, "FileRelationType") }
func (r FileRelationType) Valid() bool    { _, ok := relationNames[r]; return ok }

// FileReleaseType is the release channel of a file.
type FileReleaseType int

const (
	ReleaseTypeRelease FileReleaseType = 1
	ReleaseTypeBeta    FileReleaseType = 2
	ReleaseTypeAlpha   FileReleaseType = 3
)

var releaseTypeNames = map[FileReleaseType]string{
	ReleaseTypeRelease: "Release",
	ReleaseTypeBeta:    "Beta",
	ReleaseTypeAlpha:   "Alpha",
}

func (r FileReleaseType) String() string { return enumString(releaseTypeNames, r, "FileReleaseType") }
func (r FileReleaseType) Valid() bool    { _, ok := releaseTypeNames[r]; return ok }

// FileStatus is a file's processing and moderation status.
type FileStatus int

const (
	FileStatusProcessing         FileStatus = 1
	FileStatusChangesRequired    FileStatus = 2
	FileStatusUnderReview        FileStatus = 3
	FileStatusApproved           FileStatus = 4
	FileStatusRejected           FileStatus = 5
	FileStatusMalwareDetected    FileStatus = 6
	FileStatusDeleted            FileStatus = 7
	FileStatusArchived           FileStatus = 8
	FileStatusTesting            FileStatus = 9
	FileStatusReleased           FileStatus = 10
	FileStatusReadyForReview     FileStatus = 11
	FileStatusDeprecated         FileStatus = 12
	FileStatusBaking             FileStatus = 13
	FileStatusAwaitingPublishing FileStatus = 14
	FileStatusFailedPublishing   FileStatus = 15
)

var fileStatusNames = map[FileStatus]string{
	FileStatusProcessing:         "Processing",
	FileStatusChangesRequired:    "ChangesRequired",
	FileStatusUnderReview:        "UnderReview",
	FileStatusApproved:           "Approved",
	FileStatusRejected:           "Rejected",
	FileStatusMalwareDetected:    "MalwareDetected",
	FileStatusDeleted:            "Deleted",
	FileStatusArchived:           "Archived",
	FileStatusTesting:            "Testing",
	FileStatusReleased:           "Released",
	FileStatusReadyForReview:     "ReadyForReview",
	FileStatusDeprecated:         "Deprecated",
	FileStatusBaking:             "Baking",
	FileStatusAwaitingPublishing: "AwaitingPublishing",
	FileStatusFailedPublishing:   "FailedPublishing",
}

func (s FileStatus) String() string { return enumString(fileStatusNames, s, "FileStatus") }
func (s FileStatus) Valid() bool    { _, ok := fileStatusNames[s]; return ok }

// HashAlgo is the algorithm of a FileHash.
type HashAlgo int

const (
	HashAlgoSHA1 HashAlgo = 1
	HashAlgoMD5  HashAlgo = 2
)

var hashAlgoNames = map[HashAlgo]string{
	HashAlgoSHA1: "Sha1",
	HashAlgoMD5:  "Md5",
}

func (a HashAlgo) String() string { return enumString(hashAlgoNames, a, "HashAlgo") }
func (a HashAlgo) Valid() bool    { _, ok := hashAlgoNames[a]; return ok }

// SortOrder is the direction of a sorted search. It travels as a string.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }
func (o SortOrder) Valid() bool    { return o == SortOrderAsc || o == SortOrderDesc }
