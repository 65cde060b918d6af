package app

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_records/internal/domain"
)

// PublicImagePath is the URL prefix uploaded images are served under.
const PublicImagePath = "/uploads/images/"

// allowed media types and the extension stored files get
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Upload is one file of a multipart batch as declared by the client.
type Upload struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

type ImageService struct {
	store  domain.HotelStore
	images domain.ImageStore
}

func NewImageService(s domain.HotelStore, img domain.ImageStore) *ImageService {
	return &ImageService{store: s, images: img}
}

// Attach stores every file and appends their public URLs to the hotel's
// image list. The batch is rejected as a whole if any file has a disallowed
// type. Files already saved are not removed if the final write fails.
func (s *ImageService) Attach(ctx context.Context, hotelID string, files []Upload) ([]string, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}

	exts := make([]string, len(files))
	for i, f := range files {
		ext, ok := imageExt(f.ContentType)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %q", domain.ErrInvalidFileType, f.Filename, f.ContentType)
		}
		exts[i] = ext
	}

	h, err := s.store.Get(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for i, f := range files {
		name, err := s.save(ctx, exts[i], f)
		if err != nil {
			return nil, fmt.Errorf("save image %q for %s: %w", f.Filename, hotelID, err)
		}
		urls = append(urls, PublicImagePath+name)
	}

	h.Images = append(append([]string{}, h.Images...), urls...)
	if err := s.store.Put(ctx, h); err != nil {
		log.Warn().Str("hotel_id", hotelID).Strs("orphaned", urls).Msg("image files saved but record write failed")
		return nil, fmt.Errorf("attach images to %s: %w", hotelID, err)
	}
	return urls, nil
}

func (s *ImageService) save(ctx context.Context, ext string, f Upload) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return s.images.Save(ctx, ext, rc)
}

// imageExt ignores media type parameters such as charset.
func imageExt(contentType string) (string, bool) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	ext, ok := imageTypes[strings.ToLower(mt)]
	return ext, ok
}
