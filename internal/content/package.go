package content

import (
	"fmt"
	"io"
	"strings"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/locate"
	"github.com/osse101/BaroCatalog_Go/internal/node"
	"github.com/osse101/BaroCatalog_Go/internal/validation"
)

// ParsePackage reads a content package definition. The game version is normalised from
// dot to dash separated form. A package without a name or version is invalid.
func ParsePackage(r io.Reader) (*domain.ContentPackage, error) {
	root, err := node.Decode(r)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParsePackageFailed, err)
	}
	if !root.IsTag(TagContentPackage) {
		return nil, fmt.Errorf(ErrFmtNotAPackage, domain.ErrInvalidContentPackage, root.Tag)
	}

	pkg := &domain.ContentPackage{
		Name:        root.String(AttrName, ""),
		Version:     NormalizeVersion(root.String(AttrGameVersion, "")),
		Items:       files(root, TagItem),
		Submarines:  files(root, TagSubmarine),
		Characters:  files(root, TagCharacter),
		Afflictions: files(root, TagAfflictions),
		Structures:  files(root, TagStructure),
		NPCSets:     files(root, TagNPCSets),
	}
	if err := validation.Structs().ValidateStruct(pkg); err != nil {
		return nil, fmt.Errorf(ErrFmtInvalidField, domain.ErrInvalidContentPackage, err)
	}
	return pkg, nil
}

// LoadPackage opens and parses a content package file given by game path.
func LoadPackage(loc *locate.Locator, path string) (*domain.ContentPackage, error) {
	f, err := loc.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenPackageFailed, path, err)
	}
	defer f.Close()
	return ParsePackage(f)
}

// ReadGameVersion returns the dash separated game version of the vanilla package.
func ReadGameVersion(loc *locate.Locator) (string, error) {
	pkg, err := LoadPackage(loc, VanillaPackagePath)
	if err != nil {
		return "", err
	}
	return pkg.Version, nil
}

// NormalizeVersion turns "1.2.8.0" into "1-2-8-0".
func NormalizeVersion(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), ".", "-")
}

func files(root *node.Node, tag string) []string {
	out := []string{}
	for _, c := range root.Children {
		if !c.IsTag(tag) {
			continue
		}
		if f, ok := c.Attr(AttrFile); ok {
			out = append(out, locate.Clean(f))
		}
	}
	return out
}
