package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
)

const avatarSize = 256

// Background palette for generated initials avatars. The pick is
// deterministic per owner so regeneration is stable.
var avatarPalette = []string{
	"#4C6EF5", "#15AABF", "#12B886", "#FA5252",
	"#FD7E14", "#7950F2", "#E64980", "#2F9E44",
}

type AvatarService interface {
	// Generate renders an initials avatar, stores it, and returns the
	// data URL together with the background color used.
	Generate(ctx context.Context, ownerID, initials, displayName string) (string, string, error)
	Get(ctx context.Context, ownerID string) (string, error)
	Remove(ctx context.Context, ownerID string) error
}

type avatarService struct {
	log        *logger.Logger
	avatarRepo repos.AvatarRepo
	fontFace   font.Face
}

func NewAvatarService(log *logger.Logger, avatarRepo repos.AvatarRepo) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse avatar font: %w", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{Size: avatarSize * 0.42})

	return &avatarService{
		log:        serviceLog,
		avatarRepo: avatarRepo,
		fontFace:   face,
	}, nil
}

func (as *avatarService) Generate(ctx context.Context, ownerID, initials, displayName string) (string, string, error) {
	initials = normalizeInitials(initials)

	hexColor := pickAvatarColor(displayName + ownerID)
	bg, err := parseHexColor(hexColor)
	if err != nil {
		return "", "", err
	}

	dc := gg.NewContext(avatarSize, avatarSize)
	dc.SetColor(bg)
	dc.DrawRectangle(0, 0, avatarSize, avatarSize)
	dc.Fill()
	dc.SetFontFace(as.fontFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(strings.ToUpper(initials), avatarSize/2, avatarSize/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return "", "", fmt.Errorf("encode avatar png: %w", err)
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	if err := as.avatarRepo.Set(ctx, ownerID, dataURL); err != nil {
		return "", "", fmt.Errorf("store avatar: %w", err)
	}

	as.log.Debug("Generated avatar", "owner_id", ownerID, "color", hexColor)
	return dataURL, hexColor, nil
}

func (as *avatarService) Get(ctx context.Context, ownerID string) (string, error) {
	return as.avatarRepo.Get(ctx, ownerID)
}

func (as *avatarService) Remove(ctx context.Context, ownerID string) error {
	return as.avatarRepo.Delete(ctx, ownerID)
}

// normalizeInitials caps the rendered text at two runes, not bytes,
// so multi-byte letters stay valid UTF-8.
func normalizeInitials(initials string) string {
	initials = strings.TrimSpace(initials)
	if initials == "" {
		return "?"
	}
	if r := []rune(initials); len(r) > 2 {
		return string(r[:2])
	}
	return initials
}

func pickAvatarColor(seed string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return avatarPalette[int(h.Sum32())%len(avatarPalette)]
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("bad avatar color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad avatar color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
