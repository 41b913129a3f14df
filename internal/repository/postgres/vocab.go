package postgres

import (
	"database/sql"
	"errors"

	"vocabflash/internal/domain"
)

// VocabRepo implements repository.VocabRepository
type VocabRepo struct {
	db *sql.DB
}

// NewVocabRepo creates a new vocabulary repository
func NewVocabRepo(db *sql.DB) *VocabRepo {
	return &VocabRepo{db: db}
}

// FetchPage returns one page of headwords, most recent first, and the total page count.
// Headwords without a dictionary row come back with empty part of speech and meaning.
func (r *VocabRepo) FetchPage(page, perPage int) (domain.Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM vocabs`).Scan(&total); err != nil {
		return domain.Page{}, err
	}
	totalPages := (total + perPage - 1) / perPage

	query := `
		SELECT v.vocab, COALESCE(d.partofspeech, ''), COALESCE(d.meaning, ''), v.created_at
		FROM vocabs v
		LEFT JOIN LATERAL (
			SELECT partofspeech, meaning
			FROM vocab_dicts
			WHERE vocab_dicts.vocab = v.vocab
			ORDER BY created_at ASC
			LIMIT 1
		) d ON TRUE
		ORDER BY v.created_at DESC, v.vocab ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(query, perPage, (page-1)*perPage)
	if err != nil {
		return domain.Page{}, err
	}
	defer rows.Close()

	var entries []domain.VocabularyEntry
	for rows.Next() {
		var e domain.VocabularyEntry
		if err := rows.Scan(&e.Headword, &e.PartOfSpeech, &e.Meaning, &e.CreatedAt); err != nil {
			return domain.Page{}, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return domain.Page{}, err
	}

	return domain.Page{Entries: entries, TotalPages: totalPages}, nil
}

// FetchAudio returns the pronunciation stored for the exact headword
func (r *VocabRepo) FetchAudio(headword string) (*domain.Pronunciation, error) {
	var p domain.Pronunciation
	query := `SELECT id, vocab, mp3 FROM vocab_speeches WHERE vocab = $1 LIMIT 1`
	err := r.db.QueryRow(query, headword).Scan(&p.ID, &p.Headword, &p.MP3)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Ping checks the database connection
func (r *VocabRepo) Ping() error {
	return r.db.Ping()
}
