package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/data-catalog/models"
)

// UploadResult reports what [Upload] did with one item.
type UploadResult struct {
	Name    string
	ID      string
	Updated bool
	Err     error
}

// Upload adds each item to the partition, or updates the existing object
// when one with the same name is already listed. Failures of single items
// are reported in the results; only a failed listing aborts the upload.
func Upload(ctx context.Context, client CatalogClient, dataType models.LocationDataType, items []models.LocationData) ([]UploadResult, error) {
	entries, err := client.List(ctx, dataType, models.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list existing objects: %w", err)
	}

	existing := make(map[string]string, len(entries))
	for _, e := range entries {
		existing[e.Name] = e.ID
	}

	results := make([]UploadResult, 0, len(items))
	for _, item := range items {
		res := UploadResult{Name: item.Name}

		if id, ok := existing[item.Name]; ok {
			res.ID, res.Updated = id, true
			res.Err = client.Update(ctx, dataType, id, item)
		} else {
			res.ID, res.Err = client.Add(ctx, dataType, item)
			if res.Err == nil {
				existing[item.Name] = res.ID
			}
		}

		results = append(results, res)
	}

	return results, nil
}
