package course

import (
	"context"
	"fmt"
)

// Persister writes Store changes back to a Repository as they happen.
// The first write error is kept and further writes are skipped.
type Persister struct {
	ctx         context.Context
	repo        Repository
	store       *Store
	paletteName func(int) string
	err         error
}

// Persist subscribes a Persister to store. paletteName maps the palette
// index to the name saved with the semester.
func Persist(ctx context.Context, repo Repository, store *Store, paletteName func(int) string) *Persister {
	p := &Persister{ctx: ctx, repo: repo, store: store, paletteName: paletteName}
	store.Subscribe(p.onChange)
	return p
}

// Err returns the first write error.
func (p *Persister) Err() error {
	return p.err
}

func (p *Persister) onChange(c Change) {
	if p.err != nil {
		return
	}
	switch c {
	case ChangeList:
		if err := p.repo.ReplaceSessions(p.ctx, p.store.sessions); err != nil {
			p.err = fmt.Errorf("saving sessions: %w", err)
			return
		}
		// week count lives with the semester
		p.err = p.saveSemester()
	case ChangeStartDate, ChangePalette:
		p.err = p.saveSemester()
	}
}

func (p *Persister) saveSemester() error {
	sem := Semester{StartDate: p.store.StartDate(), WeekCount: p.store.WeekCount()}
	if p.paletteName != nil {
		sem.Palette = p.paletteName(p.store.PaletteIndex())
	}
	if err := p.repo.SaveSemester(p.ctx, sem); err != nil {
		return fmt.Errorf("saving semester: %w", err)
	}
	return nil
}
