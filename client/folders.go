package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bodrovis/boxapi/utils"
)

type Folder struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
	ETag string `json:"etag"`
}

type folderParent struct {
	ID string `json:"id"`
}

type createFolderBody struct {
	Name   string       `json:"name"`
	Parent folderParent `json:"parent"`
}

// CreateFolder posts to folders. A name clash comes back as a 409
// *apierr.APIError with code item_name_in_use.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (*Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("create folder: name is required")
	}
	if parentID == "" {
		parentID = "0" // root
	}

	buf, err := utils.EncodeJSONBody(createFolderBody{Name: name, Parent: folderParent{ID: parentID}})
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	var f Folder
	if _, err := c.do(ctx, http.MethodPost, "folders", buf, &f); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return &f, nil
}
