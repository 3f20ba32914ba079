package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// kvTx wraps a transaction over the kv and meta tables
type kvTx struct {
	tx  *sql.Tx
	ctx context.Context
	now time.Time
}

// withTx runs fn in a transaction, committing on success
func (d *DB) withTx(ctx context.Context, fn func(tx *kvTx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&kvTx{tx: tx, ctx: ctx, now: d.now()}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// set inserts or replaces one entry
func (t *kvTx) set(namespace, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = t.now.Add(ttl).UnixMilli()
	}
	if value == nil {
		value = []byte{}
	}

	_, err := t.tx.ExecContext(t.ctx, `
		INSERT OR REPLACE INTO kv (namespace, key, value, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, namespace, key, value, expiresAt, t.now.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// clearNamespace removes every entry of a namespace
func (t *kvTx) clearNamespace(namespace string) (int64, error) {
	res, err := t.tx.ExecContext(t.ctx, `DELETE FROM kv WHERE namespace = ?`, namespace)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// purgeExpired removes entries whose ttl has passed
func (t *kvTx) purgeExpired() (int64, error) {
	res, err := t.tx.ExecContext(t.ctx, `
		DELETE FROM kv WHERE expires_at > 0 AND expires_at <= ?
	`, t.now.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// setMeta records a meta value
func (t *kvTx) setMeta(key, value string) error {
	_, err := t.tx.ExecContext(t.ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}
