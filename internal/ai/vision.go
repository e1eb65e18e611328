package ai

import (
	"bytes"
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"

	"github.com/Harshith29124/craftconnect/internal/models"
)

const maxLabels = 20

// VisionClient implements ImageLabeler using Google Cloud Vision.
type VisionClient struct {
	client *vision.ImageAnnotatorClient
}

func NewVisionClient(ctx context.Context) (*VisionClient, error) {
	client, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionClient{client: client}, nil
}

func (v *VisionClient) Close() error {
	return v.client.Close()
}

// LabelImage runs label detection and copies each annotation's fields
// verbatim into the persisted label shape.
func (v *VisionClient) LabelImage(ctx context.Context, image []byte) ([]models.ImageLabel, error) {
	img, err := vision.NewImageFromReader(bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	annotations, err := v.client.DetectLabels(ctx, img, nil, maxLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to label image: %w", err)
	}

	labels := make([]models.ImageLabel, 0, len(annotations))
	for _, a := range annotations {
		labels = append(labels, models.ImageLabel{
			Description: a.GetDescription(),
			Score:       a.GetScore(),
			Confidence:  a.GetConfidence(),
		})
	}
	return labels, nil
}
