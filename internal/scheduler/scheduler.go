// Package scheduler delivers due reminders on a once-per-minute cadence.
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"remindbot/internal/store"
)

// Sender delivers outbound text to a chat.
type Sender interface {
	Send(chatID int64, text string) error
}

// Scheduler polls the store every minute and sends reminders whose due
// time equals the current minute.
type Scheduler struct {
	store  *store.Store
	sender Sender
	loc    *time.Location
	cron   *cron.Cron
	logger *log.Logger
}

// New creates a Scheduler; Start must be called to begin ticking.
func New(st *store.Store, sender Sender, loc *time.Location, logger *log.Logger) *Scheduler {
	// SkipIfStillRunning keeps a slow tick from overlapping the next
	// one; skipped minutes are simply lost, matching the exact-minute
	// delivery contract.
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
	)
	return &Scheduler{
		store:  st,
		sender: sender,
		loc:    loc,
		cron:   c,
		logger: logger,
	}
}

// Start registers the minute tick and starts the scheduler loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.tick); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) tick() {
	s.deliverDue(time.Now().In(s.loc))
}

// deliverDue sends every reminder due at now's minute and removes it
// from the store. Delivery is best effort: a failed send is logged and
// the record is deleted anyway, never retried on a later tick. A store
// error aborts only the item it hit, not the tick.
func (s *Scheduler) deliverDue(now time.Time) {
	due := now.Truncate(time.Minute)
	reminders, err := s.store.FindDueAt(due)
	if err != nil {
		s.logger.Printf("scheduler: find reminders due %s: %v", due.Format("02.01.2006 15:04"), err)
		return
	}

	for _, r := range reminders {
		if err := s.sender.Send(r.ChatID, r.Note); err != nil {
			s.logger.Printf("scheduler: deliver reminder %d to chat %d: %v", r.ID, r.ChatID, err)
		}
		if _, err := s.store.DeleteByID(r.ID); err != nil {
			s.logger.Printf("scheduler: delete reminder %d: %v", r.ID, err)
		}
	}
}
