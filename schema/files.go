package schema

import "time"

// File is a downloadable file of a mod.
type File struct {
	ID            int             `json:"id"`
	GameID        int             `json:"gameId"`
	ModID         int             `json:"modId"`
	IsAvailable   bool            `json:"isAvailable"`
	DisplayName   string          `json:"displayName"`
	FileName      string          `json:"fileName"`
	ReleaseType   FileReleaseType `json:"releaseType"`
	FileStatus    FileStatus      `json:"fileStatus"`
	Hashes        []FileHash      `json:"hashes"`
	FileDate      time.Time       `json:"fileDate"`
	FileLength    int64           `json:"fileLength"`
	DownloadCount int64           `json:"downloadCount"`
	DownloadURL   string          `json:"downloadUrl"`

	FileSizeOnDisk *int64 `json:"fileSizeOnDisk,omitempty"`

	GameVersions         []string              `json:"gameVersions"`
	SortableGameVersions []SortableGameVersion `json:"sortableGameVersions"`
	Dependencies         []FileDependency      `json:"dependencies"`

	ExposeAsAlternative  *bool      `json:"exposeAsAlternative,omitempty"`
	ParentProjectFileID  *int       `json:"parentProjectFileId,omitempty"`
	AlternateFileID      *int       `json:"alternateFileId,omitempty"`
	IsServerPack         *bool      `json:"isServerPack,omitempty"`
	ServerPackFileID     *int       `json:"serverPackFileId,omitempty"`
	IsEarlyAccessContent *bool      `json:"isEarlyAccessContent,omitempty"`
	EarlyAccessEndDate   *time.Time `json:"earlyAccessEndDate,omitempty"`

	FileFingerprint int64        `json:"fileFingerprint"`
	Modules         []FileModule `json:"modules"`
}

// FileHash contains hash info for a file
type FileHash struct {
	Value string   `json:"value"`
	Algo  HashAlgo `json:"algo"`
}

// FileDependency represents a file's dependency on another mod
type FileDependency struct {
	ModID        int              `json:"modId"`
	RelationType FileRelationType `json:"relationType"`
}

// FileModule is a top level entry of a file's archive and its fingerprint.
type FileModule struct {
	Name        string `json:"name"`
	Fingerprint int64  `json:"fingerprint"`
}

// SortableGameVersion carries version metadata used to order files.
type SortableGameVersion struct {
	// GameVersionName is the original name, e.g. "1.5b".
	GameVersionName string `json:"gameVersionName"`
	// GameVersionPadded sorts lexically, e.g. "0000000001.0000000005".
	GameVersionPadded      string    `json:"gameVersionPadded"`
	GameVersion            string    `json:"gameVersion"`
	GameVersionReleaseDate time.Time `json:"gameVersionReleaseDate"`
	GameVersionTypeID      *int      `json:"gameVersionTypeId,omitempty"`
}

// FileIndex contains file index info for latest files
type FileIndex struct {
	GameVersion       string          `json:"gameVersion"`
	FileID            int             `json:"fileId"`
	Filename          string          `json:"filename"`
	ReleaseType       FileReleaseType `json:"releaseType"`
	GameVersionTypeID *int            `json:"gameVersionTypeId,omitempty"`
	ModLoader         ModLoaderType   `json:"modLoader"`
}
