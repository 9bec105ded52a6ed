package schema

import "time"

// MinecraftGameVersion describes one Minecraft release known to the catalog.
type MinecraftGameVersion struct {
	ID                    int                   `json:"id"`
	GameVersionID         int                   `json:"gameVersionId"`
	VersionString         string                `json:"versionString"`
	JarDownloadURL        string                `json:"jarDownloadUrl"`
	JSONDownloadURL       string                `json:"jsonDownloadUrl"`
	Approved              bool                  `json:"approved"`
	DateModified          time.Time             `json:"dateModified"`
	GameVersionTypeID     int                   `json:"gameVersionTypeId"`
	GameVersionStatus     GameVersionStatus     `json:"gameVersionStatus"`
	GameVersionTypeStatus GameVersionTypeStatus `json:"gameVersionTypeStatus"`
}

// MinecraftModLoaderIndex is a mod loader build listed for a Minecraft version.
type MinecraftModLoaderIndex struct {
	Name         string        `json:"name"`
	GameVersion  string        `json:"gameVersion"`
	Latest       bool          `json:"latest"`
	Recommended  bool          `json:"recommended"`
	DateModified time.Time     `json:"dateModified"`
	Type         ModLoaderType `json:"type"`
}

// MinecraftModLoaderVersion is the full record of one mod loader build.
type MinecraftModLoaderVersion struct {
	ID                       int                    `json:"id"`
	GameVersionID            int                    `json:"gameVersionId"`
	MinecraftGameVersionID   int                    `json:"minecraftGameVersionId"`
	ForgeVersion             string                 `json:"forgeVersion"`
	Name                     string                 `json:"name"`
	Type                     ModLoaderType          `json:"type"`
	DownloadURL              string                 `json:"downloadUrl"`
	Filename                 string                 `json:"filename"`
	InstallMethod            ModLoaderInstallMethod `json:"installMethod"`
	Latest                   bool                   `json:"latest"`
	Recommended              bool                   `json:"recommended"`
	Approved                 bool                   `json:"approved"`
	DateModified             time.Time              `json:"dateModified"`
	MavenVersionString       string                 `json:"mavenVersionString"`
	VersionJSON              string                 `json:"versionJson"`
	LibrariesInstallLocation string                 `json:"librariesInstallLocation"`
	MinecraftVersion         string                 `json:"minecraftVersion"`
	AdditionalFilesJSON      string                 `json:"additionalFilesJson"`

	ModLoaderGameVersionID         int                   `json:"modLoaderGameVersionId"`
	ModLoaderGameVersionTypeID     int                   `json:"modLoaderGameVersionTypeId"`
	ModLoaderGameVersionStatus     GameVersionStatus     `json:"modLoaderGameVersionStatus"`
	ModLoaderGameVersionTypeStatus GameVersionTypeStatus `json:"modLoaderGameVersionTypeStatus"`
	MCGameVersionID                int                   `json:"mcGameVersionId"`
	MCGameVersionTypeID            int                   `json:"mcGameVersionTypeId"`
	MCGameVersionStatus            GameVersionStatus     `json:"mcGameVersionStatus"`
	MCGameVersionTypeStatus        GameVersionTypeStatus `json:"mcGameVersionTypeStatus"`
}
