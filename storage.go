package emojifish

//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=emojifish

// Storage is the read side of the emoji dataset. It is consulted once, when a Catalog is built.
type Storage interface {
	GetAllEmojis() ([]Emoji, error)      // 全ての絵文字をデータセット順に返す
	GetAliases() ([]AliasEntry, error)   // エイリアス表を登録順に返す
	GetSkinTones() (SkinToneData, error) // 肌色修飾子と対応絵文字の一覧を返す
}
