package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Room is a stored room configuration document.
type Room struct {
	ID        int64
	ProfileID int64
	Name      string
	Document  json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomStore provides room configuration CRUD operations.
type RoomStore interface {
	Get(ctx context.Context, profileID int64, name string) (*Room, error)
	List(ctx context.Context, profileID int64) ([]*Room, error)
	Save(ctx context.Context, r *Room) error
	Delete(ctx context.Context, profileID int64, name string) error
}

// Rooms returns a RoomStore for this database.
func (db *DB) Rooms() RoomStore {
	return &roomStore{db: db}
}

type roomStore struct {
	db *DB
}

const roomColumns = `id, profile_id, name, document, created_at, updated_at`

func scanRoom(row scanner) (*Room, error) {
	r := &Room{}
	var doc, createdAt, updatedAt string
	if err := row.Scan(&r.ID, &r.ProfileID, &r.Name, &doc, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	r.Document = json.RawMessage(doc)
	r.CreatedAt = parseTime(createdAt)
	r.UpdatedAt = parseTime(updatedAt)
	return r, nil
}

func (s *roomStore) Get(ctx context.Context, profileID int64, name string) (*Room, error) {
	return scanRoom(s.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE profile_id = ? AND name = ?`, profileID, name))
}

func (s *roomStore) List(ctx context.Context, profileID int64) ([]*Room, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE profile_id = ? ORDER BY name`, profileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var rooms []*Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// Save inserts the room or replaces the document of an existing room with
// the same profile and name.
func (s *roomStore) Save(ctx context.Context, r *Room) error {
	if r.Name == "" {
		return fmt.Errorf("failed to save room: name is empty")
	}
	if !json.Valid(r.Document) {
		return fmt.Errorf("failed to save room %q: document is not valid JSON", r.Name)
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO rooms (profile_id, name, document)
		VALUES (?, ?, ?)
		ON CONFLICT (profile_id, name) DO UPDATE SET
			document = excluded.document,
			updated_at = datetime('now')
		RETURNING id
	`, r.ProfileID, r.Name, string(r.Document)).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("failed to save room %q: %w", r.Name, err)
	}
	return nil
}

func (s *roomStore) Delete(ctx context.Context, profileID int64, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE profile_id = ? AND name = ?`, profileID, name)
	if err != nil {
		return err
	}
	return expectRow(result, ErrRoomNotFound)
}
