package tools

import (
	"errors"
	"strings"

	"listora/models"
)

// ValidateAsset checks a record before any store mutation happens and
// fills the defaults that don't depend on the partition. Validation
// failures abort the operation with no write.
func ValidateAsset(asset *models.Asset) error {
	asset.Title = strings.TrimSpace(asset.Title)
	if asset.Title == "" {
		return errors.New("title is required")
	}

	if asset.Type == "" {
		asset.Type = models.AssetTypeOther
	}
	switch asset.Type {
	case models.AssetTypePrompt, models.AssetTypePDF, models.AssetTypeGuidelines,
		models.AssetTypeRoleplay, models.AssetTypeVideo, models.AssetTypeOther:
	default:
		return errors.New("unknown asset type")
	}

	if asset.Source == "" {
		asset.Source = models.SourceCreated
	}
	switch asset.Source {
	case models.SourceUpload, models.SourceExternalLink, models.SourceCreated:
	default:
		return errors.New("unknown source")
	}

	return nil
}
