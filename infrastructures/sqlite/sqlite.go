package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sobadon/radiarc/domain/model/archive"
	"github.com/sobadon/radiarc/domain/repository"
	"github.com/sobadon/radiarc/internal/errutil"
)

type archiveSqlite struct {
	Station string         `db:"station"`
	Key     string         `db:"key"`
	Status  string         `db:"status"`
	Code    int            `db:"code"`
	Reason  sql.NullString `db:"reason"`
	URL     sql.NullString `db:"url"`
}

func archiveSqliteToModelOutcome(archSqlite archiveSqlite) archive.Outcome {
	return archive.Outcome{
		Status: archive.Status(archSqlite.Status),
		Code:   archSqlite.Code,
		Reason: archSqlite.Reason.String, // 空文字になってくれればよい
		URL:    archSqlite.URL.String,
	}
}

func modelOutcomeToArchiveSqlite(station string, key string, outcome archive.Outcome) archiveSqlite {
	var reason sql.NullString
	if outcome.Reason != "" {
		reason.Valid = true
		reason.String = outcome.Reason
	}

	var url sql.NullString
	if outcome.URL != "" {
		url.Valid = true
		url.String = outcome.URL
	}

	return archiveSqlite{
		Station: station,
		Key:     key,
		Status:  outcome.Status.String(),
		Code:    outcome.Code,
		Reason:  reason,
		URL:     url,
	}
}

func NewDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	return db, nil
}

// テーブル作成
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`create table if not exists archives (
		station text not null,
		key text not null,
		status text not null,
		code integer not null,
		reason text,
		url text,
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime')),
		primary key (station, key)
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`CREATE TRIGGER if not exists trigger_updated_at AFTER UPDATE ON archives
		BEGIN
			UPDATE archives SET updated_at = DATETIME('now', 'localtime') WHERE rowid == NEW.rowid;
		END;
		`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

type client struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) repository.ArchiveStore {
	return &client{
		DB: db,
	}
}

// 返されるエラー
// - errutil.ErrDatabaseNotFoundArchive
func (c *client) Load(ctx context.Context, station string, key string) (*archive.Outcome, error) {
	var archsSqlite []archiveSqlite
	err := c.DB.SelectContext(ctx, &archsSqlite,
		`select station, key, status, code, reason, url from archives where station = ? and key = ?`,
		station, key)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(archsSqlite) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFoundArchive, "not found archive (station = %s, key = %s)", station, key)
	}

	outcome := archiveSqliteToModelOutcome(archsSqlite[0])
	return &outcome, nil
}

// 同一キーがあれば丸ごと上書き
// 未確定な結果を新しい解決結果で置き換えるのに使う
func (c *client) Save(ctx context.Context, station string, key string, outcome archive.Outcome) error {
	archSqlite := modelOutcomeToArchiveSqlite(station, key, outcome)
	_, err := c.DB.NamedExecContext(ctx,
		`insert into archives (station, key, status, code, reason, url)
		values
		(:station, :key, :status, :code, :reason, :url)
		on conflict (station, key) do update set
			status = excluded.status,
			code = excluded.code,
			reason = excluded.reason,
			url = excluded.url`,
		archSqlite)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

func (c *client) LoadProvisional(ctx context.Context, limit int) ([]archive.Entry, error) {
	var archsSqlite []archiveSqlite
	err := c.DB.SelectContext(ctx, &archsSqlite,
		`select station, key, status, code, reason, url from archives
		where status = 'pending' or (status = 'error' and code = 404)
		order by key limit ?`,
		limit)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var entries []archive.Entry
	for _, archSqlite := range archsSqlite {
		entries = append(entries, archive.Entry{
			Station: archSqlite.Station,
			Key:     archSqlite.Key,
			Outcome: archiveSqliteToModelOutcome(archSqlite),
		})
	}

	return entries, nil
}
