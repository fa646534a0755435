package export

// Output file and directory names
const (
	ItemListFile       = "!ItemList.json"
	DefaultListingFile = "DefaultListing.json"
	SearchDocFile      = "!SearchDoc.json"
	IconsDir           = "icons"
	SpritesDir         = "sprites"

	DefaultSchemaPath = "configs/schemas/item.schema.json"
)

// IconSize is the longest side of an icon made from a sprite or a resized icon.
const IconSize = 64

// Failure stages reported to the export failure metric
const (
	StageEncode   = "encode"
	StageValidate = "validate"
	StageWrite    = "write"
	StageTexture  = "texture"
)

// File permissions
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Error messages
const (
	ErrMsgMarshalFailed     = "failed to marshal data: %w"
	ErrMsgWriteFailed       = "failed to write file %s: %w"
	ErrMsgReadFailed        = "failed to read file %s: %w"
	ErrMsgUnmarshalFailed   = "failed to unmarshal JSON: %w"
	ErrMsgCreateDirFailed   = "failed to create directory %s: %w"
	ErrMsgClearDirFailed    = "failed to clear directory %s: %w"
	ErrMsgSheetNotFound     = "sprite sheet %s: %w"
	ErrMsgDecodeSheetFailed = "failed to decode sprite sheet %s: %w"
	ErrMsgRectOutOfBounds   = "rect %v outside sheet %s bounds %v"
	ErrMsgEncodeImageFailed = "failed to encode image %s: %w"
	ErrMsgItemsFailed       = "%d of %d items failed to export"
	ErrMsgTexturesFailed    = "%d of %d textures failed to export"
)

// Log messages
const (
	LogMsgItemRejected     = "Item document rejected"
	LogMsgItemsWritten     = "Item documents written"
	LogMsgListingWritten   = "Default listing written"
	LogMsgSearchDocWritten = "Search document written"
	LogMsgTextureFailed    = "Texture export failed"
	LogMsgTexturesWritten  = "Textures written"
)
