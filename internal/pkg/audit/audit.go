package audit

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/oxipay/payflow/internal/pkg/logging"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
)

// Entry is one request/response exchange with the gateway. Request and
// Response hold masked NVP text.
type Entry struct {
	RequestID string
	TrxType   string
	Result    int
	PNRef     string
	Request   string
	Response  string
	CreatedBy string
	CreatedAt time.Time
}

// NewEntry masks the request and response text of an exchange
func NewEntry(requestID, trxType string, result int, pnref, request, response, user string) Entry {
	return Entry{
		RequestID: requestID,
		TrxType:   trxType,
		Result:    result,
		PNRef:     pnref,
		Request:   logging.Mask(request),
		Response:  logging.Mask(response),
		CreatedBy: user,
	}
}

// Recorder keeps an audit trail of gateway calls
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// ErrNotFound is returned when no entry matches
var ErrNotFound = errors.New("audit: no matching entry")

// ErrNoDatabase is returned by a Store that was never opened
var ErrNoDatabase = errors.New("audit: no database connection")

// Schema creates the table Store writes to
const Schema = `CREATE TABLE IF NOT EXISTS payflow_audit (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	request_id VARCHAR(64) NOT NULL,
	trx_type VARCHAR(4),
	result INT NOT NULL,
	pnref VARCHAR(32),
	request_text TEXT,
	response_text TEXT,
	created_by VARCHAR(64),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_request_id (request_id)
)`

// Store is a MySQL backed Recorder
type Store struct {
	Db *sql.DB
}

// Open connects to the MySQL database at dsn and checks the connection
func Open(dsn string) (*Store, error) {
	mycfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, sdkerr.Config(sdkerr.CodeConfig, "invalid audit dsn: "+err.Error())
	}
	mycfg.ParseTime = true

	db, err := sql.Open("mysql", mycfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{Db: db}, nil
}

// Migrate creates the audit table when it is missing
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.Db == nil {
		return ErrNoDatabase
	}
	_, err := s.Db.ExecContext(ctx, Schema)
	return err
}

// Record will save the entry to the database
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil || s.Db == nil {
		return ErrNoDatabase
	}

	query := `INSERT INTO
		payflow_audit
		(
			request_id,
			trx_type,
			result,
			pnref,
			request_text,
			response_text,
			created_by
		) VALUES (?, ?, ?, ?, ?, ?, ?) `

	stmt, err := s.Db.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		e.RequestID,
		newNullString(e.TrxType),
		e.Result,
		newNullString(e.PNRef),
		newNullString(e.Request),
		newNullString(e.Response),
		newNullString(e.CreatedBy),
	)
	return err
}

// FindByRequestID will return the latest entry recorded for requestID
func (s *Store) FindByRequestID(ctx context.Context, requestID string) (*Entry, error) {
	if s == nil || s.Db == nil {
		return nil, ErrNoDatabase
	}

	query := `SELECT
			request_id,
			trx_type,
			result,
			pnref,
			request_text,
			response_text,
			created_by,
			created_at
		FROM
			payflow_audit
		WHERE
			request_id = ?
		ORDER BY id DESC
		LIMIT 1`

	var e Entry
	var trxType, pnref, request, response, author sql.NullString
	err := s.Db.QueryRowContext(ctx, query, requestID).Scan(
		&e.RequestID,
		&trxType,
		&e.Result,
		&pnref,
		&request,
		&response,
		&author,
		&e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	e.TrxType = trxType.String
	e.PNRef = pnref.String
	e.Request = request.String
	e.Response = response.String
	e.CreatedBy = author.String
	return &e, nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	if s == nil || s.Db == nil {
		return nil
	}
	return s.Db.Close()
}

func (e Entry) String() string {
	return e.RequestID + " " + e.TrxType + " RESULT=" + strconv.Itoa(e.Result)
}

func newNullString(s string) sql.NullString {
	if len(s) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{
		String: s,
		Valid:  true,
	}
}
