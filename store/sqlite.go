package store

import (
	"chat-mapper/errors"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entities (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	type_name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entities_type ON entities (type_name, id);
CREATE TABLE IF NOT EXISTS properties (
	entity_id INTEGER NOT NULL REFERENCES entities (id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (entity_id, name)
);`

// SQLiteStore keeps entities in one table and their properties in another,
// ordered by insertion position.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens (and creates if needed) the database file at path.
func OpenSQLite(path string, log *slog.Logger) (*SQLiteStore, error) {
	if path == "" {
		path = "entities.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !os.IsExist(err) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One logical actor drives the store; a single connection also keeps
	// ":memory:" databases from splitting across connections.
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func (s *SQLiteStore) FetchEntity(id int64) (Entity, error) {
	entity := Entity{ID: id}
	err := s.db.QueryRow(`SELECT type_name FROM entities WHERE id = ?`, id).Scan(&entity.TypeName)
	if err == sql.ErrNoRows {
		return Entity{}, fmt.Errorf("%w: %d", errors.ErrEntityNotFound, id)
	}
	if err != nil {
		return Entity{}, fmt.Errorf("select entity %d: %w", id, err)
	}
	if entity.Properties, err = s.properties(id); err != nil {
		return Entity{}, err
	}
	return entity, nil
}

func (s *SQLiteStore) properties(id int64) ([]Property, error) {
	rows, err := s.db.Query(`SELECT name, value FROM properties WHERE entity_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("select properties %d: %w", id, err)
	}
	defer func() { _ = rows.Close() }()
	var properties []Property
	for rows.Next() {
		p := Property{EntityID: id}
		if err := rows.Scan(&p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (s *SQLiteStore) FetchEntitiesByType(typeName string) ([]Entity, error) {
	rows, err := s.db.Query(`SELECT id FROM entities WHERE type_name = ? ORDER BY id`, typeName)
	if err != nil {
		return nil, fmt.Errorf("select %s entities: %w", typeName, err)
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	// The connection must be free again before reading properties.
	if err = rows.Close(); err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(ids))
	for _, id := range ids {
		properties, err := s.properties(id)
		if err != nil {
			return nil, err
		}
		entities = append(entities, Entity{ID: id, TypeName: typeName, Properties: properties})
	}
	return entities, nil
}

func (s *SQLiteStore) CreateEntity(entity Entity) (created Entity, retErr error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Entity{}, err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	result, err := tx.Exec(`INSERT INTO entities (type_name) VALUES (?)`, entity.TypeName)
	if err != nil {
		return Entity{}, fmt.Errorf("insert entity: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Entity{}, err
	}
	created = entity.withID(id)
	for position, p := range created.Properties {
		if _, err = tx.Exec(
			`INSERT INTO properties (entity_id, position, name, value) VALUES (?, ?, ?, ?)`,
			id, position, p.Name, p.Value,
		); err != nil {
			return Entity{}, fmt.Errorf("insert property %s: %w", p.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return Entity{}, err
	}
	s.log.Debug("Entity created", "id", created.ID, "type", created.TypeName)
	return created, nil
}

func (s *SQLiteStore) DeleteEntity(entity Entity) (retErr error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.Exec(`DELETE FROM properties WHERE entity_id = ?`, entity.ID); err != nil {
		return fmt.Errorf("delete entity %d properties: %w", entity.ID, err)
	}
	if _, err = tx.Exec(`DELETE FROM entities WHERE id = ?`, entity.ID); err != nil {
		return fmt.Errorf("delete entity %d: %w", entity.ID, err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) UpdateProperty(property Property) error {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM entities WHERE id = ?`, property.EntityID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("select entity %d: %w", property.EntityID, err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %d", errors.ErrEntityNotFound, property.EntityID)
	}
	_, err = s.db.Exec(`
		INSERT INTO properties (entity_id, position, name, value)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM properties WHERE entity_id = ?), ?, ?)
		ON CONFLICT (entity_id, name) DO UPDATE SET value = excluded.value`,
		property.EntityID, property.EntityID, property.Name, property.Value,
	)
	if err != nil {
		return fmt.Errorf("update property %s: %w", property.Name, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	s.log.Info("Closing SQLite...")
	return s.db.Close()
}
