package emojifish

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	emojisFile    = "data/emojis.json"
	aliasesFile   = "data/aliases.json"
	skinTonesFile = "data/skin-tones.json"
)

// StorageMemoryImpl serves a dataset held in memory.
type StorageMemoryImpl struct {
	emojis    []Emoji
	aliases   []AliasEntry
	skinTones SkinToneData
}

func NewStorageMemoryImpl(emojis []Emoji, aliases []AliasEntry, skinTones SkinToneData) *StorageMemoryImpl {
	return &StorageMemoryImpl{
		emojis:    emojis,
		aliases:   aliases,
		skinTones: skinTones,
	}
}

// NewEmbeddedStorage decodes the dataset compiled into the binary.
func NewEmbeddedStorage() (*StorageMemoryImpl, error) {
	s := &StorageMemoryImpl{}
	if err := decodeDataFile(emojisFile, &s.emojis); err != nil {
		return nil, err
	}
	if err := decodeDataFile(aliasesFile, &s.aliases); err != nil {
		return nil, err
	}
	if err := decodeDataFile(skinTonesFile, &s.skinTones); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeDataFile(path string, v interface{}) error {
	b, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *StorageMemoryImpl) GetAllEmojis() ([]Emoji, error) {
	return append([]Emoji(nil), s.emojis...), nil
}

func (s *StorageMemoryImpl) GetAliases() ([]AliasEntry, error) {
	return append([]AliasEntry(nil), s.aliases...), nil
}

func (s *StorageMemoryImpl) GetSkinTones() (SkinToneData, error) {
	return SkinToneData{
		Modifiers: append([]SkinToneModifier(nil), s.skinTones.Modifiers...),
		Capable:   append([]string(nil), s.skinTones.Capable...),
	}, nil
}
