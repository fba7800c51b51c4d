package models

import (
	"sort"
	"time"
)

/************************************************
/**** MARK: CATEGORIES (partition keys) ****/
/************************************************/

// Category names one of the independent asset partitions. It doubles as
// the record's own category field; there is deliberately no second
// "aiType" copy to drift out of sync.
type Category string

const (
	CategoryContent    Category = "content"
	CategoryCompliance Category = "compliance"
	CategoryCoach      Category = "coach"
)

// Categories in canonical order, used by counting and seeding.
var Categories = []Category{CategoryContent, CategoryCompliance, CategoryCoach}

func (c Category) Valid() bool {
	switch c {
	case CategoryContent, CategoryCompliance, CategoryCoach:
		return true
	}
	return false
}

// StorageKey is the partition key the category's asset list lives under.
func (c Category) StorageKey() string {
	return string(c) + "Assets"
}

// ChatStorageKey is the key for the category's active chat-session list.
func (c Category) ChatStorageKey() string {
	return string(c) + "ActiveChats"
}

// CountsKey holds the derived count snapshot. It is a cache, never the
// source of truth.
const CountsKey = "assetCounts"

/************************************************
/**** MARK: ASSET TYPES ****/
/************************************************/

type AssetType string

const (
	AssetTypePrompt     AssetType = "prompt"
	AssetTypePDF        AssetType = "pdf"
	AssetTypeGuidelines AssetType = "guidelines"
	AssetTypeRoleplay   AssetType = "roleplay"
	AssetTypeVideo      AssetType = "video"
	AssetTypeOther      AssetType = "other"
)

// DefaultIcon maps an asset type to its default display glyph. Callers
// may override the icon per record.
func DefaultIcon(t AssetType) string {
	switch t {
	case AssetTypePrompt:
		return "💬"
	case AssetTypePDF:
		return "📄"
	case AssetTypeGuidelines:
		return "📋"
	case AssetTypeRoleplay:
		return "🎭"
	case AssetTypeVideo:
		return "🎥"
	default:
		return "📁"
	}
}

/************************************************
/**** MARK: SOURCE ****/
/************************************************/

// Source records provenance. Informational only; nothing branches on it
// except label text.
type Source string

const (
	SourceUpload       Source = "upload"
	SourceExternalLink Source = "external-link"
	SourceCreated      Source = "created"
)

/************************************************
/**** MARK: ASSET ****/
/************************************************/

// Asset is the single content entity: a prompt, document reference or
// media reference. Which payload fields are populated depends on source
// and type (prompts carry Content, uploads carry FileName/Size, links
// carry URL); nothing enforces mutual exclusivity.
type Asset struct {
	ID       string    `json:"id"`
	Type     AssetType `json:"type"`
	Category Category  `json:"category"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Icon     string    `json:"icon"`
	Source   Source    `json:"source"`

	Content  string `json:"content,omitempty"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Size     string `json:"size,omitempty"`

	DateAdded time.Time `json:"dateAdded"`
	Pinned    bool      `json:"pinned"`
	Hidden    bool      `json:"hidden"`

	// Processing marks an upload whose intake has not completed yet.
	Processing bool `json:"processing,omitempty"`
}

// VisibleSorted returns the default list view: hidden records excluded,
// pinned records first, then most-recent-first by DateAdded. The input
// slice is not modified.
func VisibleSorted(assets []Asset) []Asset {
	out := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if a.Hidden {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].DateAdded.After(out[j].DateAdded)
	})
	return out
}
