// Package sqlstore implements store.Adapter over a relational database via
// sqlx, grounded on the teacher's jmoiron/sqlx + go-sql-driver/mysql stack.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // relational store driver
	"github.com/jmoiron/sqlx"

	"github.com/relaywire/chat/internal/store"
)

// SQLStore implements store.Adapter backed by *sqlx.DB.
type SQLStore struct {
	db              *sqlx.DB
	maxOpen, maxIdle int
}

var _ store.Adapter = (*SQLStore)(nil)

// New returns an unopened SQLStore with the given pool sizing. maxOpen/
// maxIdle of 0 fall back to sane defaults (§5: the pool must be sized above
// max concurrent in-flight DB ops).
func New(maxOpen, maxIdle int) *SQLStore {
	return &SQLStore{maxOpen: maxOpen, maxIdle: maxIdle}
}

// Open connects using dsn (DATABASE_URL).
func (s *SQLStore) Open(dsn string) error {
	if dsn == "" {
		return errors.New("sqlstore: DATABASE_URL is not set")
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return fmt.Errorf("sqlstore: connect: %w", err)
	}

	maxOpen, maxIdle := s.maxOpen, s.maxIdle
	if maxOpen <= 0 {
		maxOpen = 32
	}
	if maxIdle <= 0 {
		maxIdle = 16
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("sqlstore: ping: %w", err)
	}

	s.db = db
	return nil
}

// Close releases the pool.
func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLStore) UserGet(ctx context.Context, id string) (*store.User, error) {
	var u store.User
	err := s.db.GetContext(ctx, &u, `SELECT id, email, created_at FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: UserGet: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) UserCreate(ctx context.Context, u *store.User) (*store.User, error) {
	existing, err := s.UserGet(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE id = id`,
		u.ID, u.Email, now)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: UserCreate: %w", err)
	}
	return s.UserGet(ctx, u.ID)
}

func (s *SQLStore) UserGetAll(ctx context.Context, ids []string) ([]store.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT id, email, created_at FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: UserGetAll: %w", err)
	}
	query = s.db.Rebind(query)

	var users []store.User
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("sqlstore: UserGetAll: %w", err)
	}
	return users, nil
}

func (s *SQLStore) UserFind(ctx context.Context, id, email string) (*store.User, error) {
	var u store.User
	var err error
	switch {
	case id != "":
		err = s.db.GetContext(ctx, &u, `SELECT id, email, created_at FROM users WHERE id = ?`, id)
	case email != "":
		err = s.db.GetContext(ctx, &u, `SELECT id, email, created_at FROM users WHERE email = ?`, email)
	default:
		return nil, errors.New("sqlstore: UserFind requires id or email")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: UserFind: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) ChatCreate(ctx context.Context, name, creatorUserID string) (*store.Chat, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: ChatCreate: begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `INSERT INTO chats (name, created_at) VALUES (?, ?)`, name, now)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: ChatCreate: insert chat: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlstore: ChatCreate: last insert id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users_chats (user_id, chat_id) VALUES (?, ?) ON DUPLICATE KEY UPDATE user_id = user_id`,
		creatorUserID, id)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: ChatCreate: insert membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sqlstore: ChatCreate: commit: %w", err)
	}

	return &store.Chat{
		ObjHeader: store.ObjHeader{ID: int32(id), CreatedAt: now},
		Name:      name,
	}, nil
}

func (s *SQLStore) ChatGet(ctx context.Context, id int32) (*store.Chat, error) {
	var c store.Chat
	err := s.db.GetContext(ctx, &c, `SELECT id, name, created_at FROM chats WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: ChatGet: %w", err)
	}
	return &c, nil
}

func (s *SQLStore) ChatsForUser(ctx context.Context, userID string) ([]store.Chat, error) {
	var chats []store.Chat
	err := s.db.SelectContext(ctx, &chats, `
		SELECT c.id, c.name, c.created_at
		FROM chats c JOIN users_chats uc ON uc.chat_id = c.id
		WHERE uc.user_id = ?
		ORDER BY c.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: ChatsForUser: %w", err)
	}
	return chats, nil
}

func (s *SQLStore) MembershipExists(ctx context.Context, userID string, chatID int32) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM users_chats WHERE user_id = ? AND chat_id = ?`, userID, chatID)
	if err != nil {
		return false, fmt.Errorf("sqlstore: MembershipExists: %w", err)
	}
	return n > 0, nil
}

func (s *SQLStore) MembershipCreate(ctx context.Context, userID string, chatID int32) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users_chats (user_id, chat_id) VALUES (?, ?) ON DUPLICATE KEY UPDATE user_id = user_id`,
		userID, chatID)
	if err != nil {
		return fmt.Errorf("sqlstore: MembershipCreate: %w", err)
	}
	return nil
}

func (s *SQLStore) UsersForChat(ctx context.Context, chatID int32) ([]store.User, error) {
	var users []store.User
	err := s.db.SelectContext(ctx, &users, `
		SELECT u.id, u.email, u.created_at
		FROM users u JOIN users_chats uc ON uc.user_id = u.id
		WHERE uc.chat_id = ?`, chatID)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: UsersForChat: %w", err)
	}
	return users, nil
}

func (s *SQLStore) MessageSave(ctx context.Context, m *store.Message) (*store.Message, error) {
	now := time.Now().UTC().Round(time.Millisecond)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (chat_id, user_id, text, created_at) VALUES (?, ?, ?, ?)`,
		m.ChatID, m.UserID, m.Text, now)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: MessageSave: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlstore: MessageSave: last insert id: %w", err)
	}

	out := *m
	out.ID = int32(id)
	out.CreatedAt = now
	return &out, nil
}

func (s *SQLStore) MessagesBefore(ctx context.Context, chatID int32, before time.Time) ([]store.Message, error) {
	var msgs []store.Message
	err := s.db.SelectContext(ctx, &msgs, `
		SELECT id, chat_id, user_id, text, created_at FROM messages
		WHERE chat_id = ? AND created_at < ?
		ORDER BY created_at ASC`, chatID, before)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: MessagesBefore: %w", err)
	}
	return msgs, nil
}

func (s *SQLStore) InviteCreate(ctx context.Context, inviterUserID, inviteeUserID string, chatID int32) (*store.Invite, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO invites (inviter_user_id, invitee_user_id, chat_id, created_at) VALUES (?, ?, ?, ?)`,
		inviterUserID, inviteeUserID, chatID, now)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: InviteCreate: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlstore: InviteCreate: last insert id: %w", err)
	}

	return &store.Invite{
		ObjHeader:     store.ObjHeader{ID: int32(id), CreatedAt: now},
		InviterUserID: inviterUserID,
		InviteeUserID: inviteeUserID,
		ChatID:        chatID,
	}, nil
}

func (s *SQLStore) InviteGet(ctx context.Context, id int32) (*store.Invite, error) {
	var inv store.Invite
	err := s.db.GetContext(ctx, &inv, `
		SELECT id, inviter_user_id, invitee_user_id, chat_id, created_at
		FROM invites WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: InviteGet: %w", err)
	}
	return &inv, nil
}

func (s *SQLStore) InvitesForUser(ctx context.Context, userID string) ([]store.Invite, error) {
	var invs []store.Invite
	err := s.db.SelectContext(ctx, &invs, `
		SELECT id, inviter_user_id, invitee_user_id, chat_id, created_at
		FROM invites WHERE invitee_user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: InvitesForUser: %w", err)
	}
	return invs, nil
}

func (s *SQLStore) InviteDeleteByID(ctx context.Context, id int32, inviteeUserID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM invites WHERE id = ? AND invitee_user_id = ?`, id, inviteeUserID)
	if err != nil {
		return fmt.Errorf("sqlstore: InviteDeleteByID: %w", err)
	}
	return nil
}

func (s *SQLStore) InviteDeleteByChat(ctx context.Context, chatID int32, inviteeUserID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM invites WHERE chat_id = ? AND invitee_user_id = ?`, chatID, inviteeUserID)
	if err != nil {
		return fmt.Errorf("sqlstore: InviteDeleteByChat: %w", err)
	}
	return nil
}
