package content

// Game paths, relative to the installation root.
const (
	VanillaPackagePath = "Content/ContentPackages/Vanilla.xml"
	ItemsDir           = "Content/Items"
	XMLExt             = ".xml"
)

// Content package tags and attributes.
const (
	TagContentPackage = "contentpackage"
	TagItem           = "Item"
	TagSubmarine      = "Submarine"
	TagCharacter      = "Character"
	TagAfflictions    = "Afflictions"
	TagStructure      = "Structure"
	TagNPCSets        = "NPCSets"

	AttrName        = "name"
	AttrGameVersion = "gameversion"
	AttrFile        = "file"
	AttrIdentifier  = "identifier"
)

// EventSuffix marks scripted event variants of regular items (e.g. psychosisartifact_event).
const EventSuffix = "_event"

// ==================== Error Messages ====================

const (
	ErrMsgOpenPackageFailed  = "failed to open content package %s: %w"
	ErrMsgParsePackageFailed = "failed to parse content package: %w"
	ErrMsgOpenRecordsFailed  = "failed to open item file %s: %w"
	ErrMsgParseRecordsFailed = "failed to parse item file %s: %w"
	ErrMsgListItemsFailed    = "failed to list item files: %w"
	ErrMsgNoRecordsLoaded    = "no item records loaded from %d files"
)

// Format strings for error construction
const (
	ErrFmtNotAPackage  = "%w: root element is <%s>"
	ErrFmtInvalidField = "%w: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgNotAnItemsFile  = "Not an <Items> file, skipping"
	LogMsgFileFailed      = "Item file could not be loaded, skipping"
	LogMsgEventSkipped    = "Event item skipped"
	LogMsgRecordsLoaded   = "Item records loaded"
	LogMsgDiscoveredFiles = "Package lists no item files, scanning the items directory"
)
