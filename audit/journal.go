package audit

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"omni/events"
	"omni/exception"
	"omni/logx"
)

// ConnectDatabase establishes a connection to PostgreSQL with a retry loop
func ConnectDatabase(databaseURL string) (*sql.DB, error) {
	const maxRetries = 5
	const retryDelay = time.Second * 3

	var db *sql.DB
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			logx.Warn("AUDIT", fmt.Sprintf("Retrying database connection (attempt %d/%d) after error: %v", attempt+1, maxRetries, lastErr))
			time.Sleep(retryDelay)
		}

		var err error
		db, err = sql.Open("postgres", databaseURL)
		if err != nil {
			lastErr = fmt.Errorf("failed to open database connection: %w", err)
			continue
		}
		if err := db.Ping(); err != nil {
			db.Close()
			lastErr = fmt.Errorf("failed to ping database: %w", err)
			continue
		}
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %v", maxRetries, lastErr)
}

// CreateJournalTable creates the omni_supply_journal table if it doesn't exist
func CreateJournalTable(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS omni_supply_journal (
		id          BIGSERIAL PRIMARY KEY,
		domain      BIGINT NOT NULL,
		event_type  VARCHAR(32) NOT NULL,
		party_from  VARCHAR(255),
		party_to    VARCHAR(255),
		amount      NUMERIC(78, 0),
		sequence    BIGINT,
		occurred_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_omni_supply_journal_type ON omni_supply_journal (event_type);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create omni_supply_journal table: %w", err)
	}
	return nil
}

// Journal appends one row per supply mutation so the supply history of a
// domain can be reconstructed by query. It consumes the event router; a
// full channel on the bus side drops events for slow journals rather
// than blocking the ledger.
type Journal struct {
	db          *sql.DB
	domain      uint32
	eventRouter *events.EventRouter
	subID       events.SubscriberID
	done        chan struct{}
}

func NewJournal(db *sql.DB, domain uint32, eventRouter *events.EventRouter) (*Journal, error) {
	if err := CreateJournalTable(db); err != nil {
		return nil, err
	}
	return &Journal{
		db:          db,
		domain:      domain,
		eventRouter: eventRouter,
		done:        make(chan struct{}),
	}, nil
}

// Start subscribes to supply events and appends them until Stop
func (j *Journal) Start() {
	subID, ch := j.eventRouter.Subscribe()
	j.subID = subID

	exception.SafeGo("AuditJournal", func() {
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if err := j.append(event); err != nil {
					logx.Error("AUDIT", fmt.Sprintf("Failed to append event %s: %v", event.Type(), err))
				}
			case <-j.done:
				return
			}
		}
	})
}

// Stop unsubscribes and ends the journal loop
func (j *Journal) Stop() {
	close(j.done)
	j.eventRouter.Unsubscribe(j.subID)
}

func (j *Journal) append(event events.SupplyEvent) error {
	var from, to, amount string
	var sequence sql.NullInt64

	switch e := event.(type) {
	case *events.Transferred:
		from, to, amount = e.From(), e.To(), e.Amount().Dec()
	case *events.Minted:
		from, to, amount = e.Minter(), e.To(), e.Amount().Dec()
	case *events.Burned:
		from, to, amount = e.Burner(), e.From(), e.Amount().Dec()
	case *events.MessageSent:
		from, to, amount = e.Sender(), e.Recipient(), e.Amount().Dec()
		sequence = sql.NullInt64{Int64: int64(e.Sequence()), Valid: true}
	case *events.MessageReceived:
		to, amount = e.Recipient(), e.Amount().Dec()
		sequence = sql.NullInt64{Int64: int64(e.Sequence()), Valid: true}
	case *events.Paused:
		from = e.Owner()
		amount = "0"
	case *events.Unpaused:
		from = e.Owner()
		amount = "0"
	case *events.RoleChanged:
		to = e.Address()
		amount = "0"
	default:
		amount = "0"
	}

	_, err := j.db.Exec(
		`INSERT INTO omni_supply_journal (domain, event_type, party_from, party_to, amount, sequence, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.domain, string(event.Type()), from, to, amount, sequence, event.Timestamp(),
	)
	return err
}
