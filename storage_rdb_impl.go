package emojifish

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

const (
	DriverMySQL    = "mysql"
	DriverSQLite3  = "sqlite3"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver   string `yaml:"driver"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"` // sqlite3 ではファイルパス
}

func NewDBConfig(driver, user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		Driver:   driver,
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		// 絵文字は4バイトなのでutf8mb4が必要
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4", c.User, c.Password, c.Addr, c.Port, c.DB), nil
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Addr, c.Port, c.DB), nil
	case DriverSQLite3:
		return c.DB, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", c.Driver)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	dsn, err := dbConfig.DSN()
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(dbConfig.Driver, dsn)
	if err != nil {
		return nil, err
	}
	if dbConfig.Driver == DriverSQLite3 {
		// :memory: は接続ごとに別のDBになる
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// StorageRdbImpl keeps the dataset in five tables. Row order is kept in seq columns.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

var schema = []string{
	`create table if not exists emojis (
		seq integer not null,
		name varchar(191) not null primary key,
		emoji varchar(64) not null,
		category varchar(64) not null default '',
		unicode_version varchar(16) not null default ''
	)`,
	`create table if not exists keywords (
		name varchar(191) not null,
		seq integer not null,
		keyword varchar(191) not null,
		primary key (name, seq)
	)`,
	`create table if not exists aliases (
		entry_seq integer not null,
		seq integer not null,
		name varchar(191) not null,
		alias varchar(191) not null primary key
	)`,
	`create table if not exists skin_tone_modifiers (
		seq integer not null primary key,
		tone varchar(32) not null,
		modifier varchar(16) not null
	)`,
	`create table if not exists skin_tone_capable (
		seq integer not null,
		name varchar(191) not null primary key
	)`,
}

var tables = []string{"emojis", "keywords", "aliases", "skin_tone_modifiers", "skin_tone_capable"}

func (s *StorageRdbImpl) CreateSchema() error {
	for _, ddl := range schema {
		if _, err := s.DB.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

func (s *StorageRdbImpl) CountEmojis() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from emojis`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllEmojis() ([]Emoji, error) {
	var emojis []Emoji
	if err := s.DB.Select(&emojis, `select name, emoji, category, unicode_version from emojis order by seq`); err != nil {
		return nil, err
	}
	var keywords []struct {
		Name    string `db:"name"`
		Keyword string `db:"keyword"`
	}
	if err := s.DB.Select(&keywords, `select name, keyword from keywords order by name, seq`); err != nil {
		return nil, err
	}
	byName := make(map[string][]string)
	for _, k := range keywords {
		byName[k.Name] = append(byName[k.Name], k.Keyword)
	}
	for i := range emojis {
		emojis[i].Keywords = byName[emojis[i].Name]
	}
	return emojis, nil
}

// GetAliases returns one entry per primary name. Primaries without aliases are not stored.
func (s *StorageRdbImpl) GetAliases() ([]AliasEntry, error) {
	var rows []struct {
		Name  string `db:"name"`
		Alias string `db:"alias"`
	}
	if err := s.DB.Select(&rows, `select name, alias from aliases order by entry_seq, seq`); err != nil {
		return nil, err
	}
	entries := []AliasEntry{}
	for _, r := range rows {
		if n := len(entries); n > 0 && entries[n-1].Primary == r.Name {
			entries[n-1].Aliases = append(entries[n-1].Aliases, r.Alias)
			continue
		}
		entries = append(entries, NewAliasEntry(r.Name, r.Alias))
	}
	return entries, nil
}

func (s *StorageRdbImpl) GetSkinTones() (SkinToneData, error) {
	var data SkinToneData
	if err := s.DB.Select(&data.Modifiers, `select tone, modifier from skin_tone_modifiers order by seq`); err != nil {
		return SkinToneData{}, err
	}
	if err := s.DB.Select(&data.Capable, `select name from skin_tone_capable order by seq`); err != nil {
		return SkinToneData{}, err
	}
	return data, nil
}

// Import replaces every stored row with the contents of catalog in one transaction.
func (s *StorageRdbImpl) Import(catalog *Catalog) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	if err := importCatalog(tx, catalog); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func importCatalog(tx *sqlx.Tx, catalog *Catalog) error {
	for _, table := range tables {
		if _, err := tx.Exec(`delete from ` + table); err != nil {
			return err
		}
	}

	// 1.絵文字とキーワード
	for i, e := range catalog.Emojis() {
		if err := insert(tx, "emojis", `insert into emojis (seq, name, emoji, category, unicode_version) values (?, ?, ?, ?, ?)`,
			i, e.Name, e.Character, e.Category, e.UnicodeVersion); err != nil {
			return err
		}
		for j, k := range e.Keywords {
			if err := insert(tx, "keywords", `insert into keywords (name, seq, keyword) values (?, ?, ?)`, e.Name, j, k); err != nil {
				return err
			}
		}
	}
	// 2.エイリアス
	for i, entry := range catalog.AliasEntries() {
		for j, alias := range entry.Aliases {
			if err := insert(tx, "aliases", `insert into aliases (entry_seq, seq, name, alias) values (?, ?, ?, ?)`,
				i, j, entry.Primary, alias); err != nil {
				return err
			}
		}
	}
	// 3.肌色
	for i, m := range catalog.SkinToneModifiers() {
		if err := insert(tx, "skin_tone_modifiers", `insert into skin_tone_modifiers (seq, tone, modifier) values (?, ?, ?)`,
			i, string(m.Tone), m.Modifier); err != nil {
			return err
		}
	}
	for i, name := range catalog.SkinToneCapable() {
		if err := insert(tx, "skin_tone_capable", `insert into skin_tone_capable (seq, name) values (?, ?)`, i, name); err != nil {
			return err
		}
	}
	return nil
}

func insert(tx *sqlx.Tx, table, query string, args ...interface{}) error {
	if _, err := tx.Exec(tx.Rebind(query), args...); err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: duplicate row in %s: %v", ErrMalformedDataset, table, err)
		}
		return err
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
