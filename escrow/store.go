package escrow

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/Kryoz0512/Survey-Chain/model"
)

// Store is the sqlite-backed escrow ledger.
type Store struct {
	db    *sql.DB
	newID func() string
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
		newID: func() string {
			return uuid.Must(uuid.NewV4()).String()
		},
	}
}

func (s *Store) Create(ctx context.Context, params CreateParams) (rec model.SurveyRecord, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrap(err, "escrow.begin_tx")
		return
	}
	defer tx.Rollback()

	rec = model.SurveyRecord{
		ID:                  s.newID(),
		Title:               params.Title,
		Description:         params.Description,
		RewardAmount:        params.RewardAmount,
		Creator:             params.Creator,
		RespondentType:      params.RespondentType,
		NumberOfRespondents: params.NumberOfRespondents,
		Questions:           params.Questions,
		Screening:           params.Screening,
		CreatedAt:           time.Now().UTC(),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO survey (id, title, description, reward_amount, creator, respondent_type, number_of_respondents, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Title,
		rec.Description,
		rec.RewardAmount,
		rec.Creator,
		rec.RespondentType,
		rec.NumberOfRespondents,
		rec.CreatedAt,
	)
	if err != nil {
		err = errors.Wrap(err, "escrow.insert_survey")
		return
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO survey_question (survey_id, position, text, type, options)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		err = errors.Wrap(err, "escrow.insert_survey.questions.prepare")
		return
	}
	defer stmt.Close()

	for i, q := range rec.Questions {
		var optionsJson []byte
		if q.Options != nil {
			optionsJson, err = json.Marshal(q.Options)
			if err != nil {
				err = errors.Wrap(err, "escrow.insert_survey.questions.options")
				return
			}
		}
		_, err = stmt.ExecContext(ctx, rec.ID, i, q.Text, q.Type, string(optionsJson))
		if err != nil {
			err = errors.Wrap(err, "escrow.insert_survey.questions.insert")
			return
		}
	}

	if rec.Screening != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO screening (survey_id, description, requirements, flexible_scheduling, date_time, meeting_link, location, deadline)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID,
			rec.Screening.Description,
			rec.Screening.Requirements,
			rec.Screening.FlexibleScheduling,
			rec.Screening.DateTime,
			rec.Screening.MeetingLink,
			rec.Screening.Location,
			rec.Screening.Deadline,
		)
		if err != nil {
			err = errors.Wrap(err, "escrow.insert_screening")
			return
		}
	}

	err = errors.Wrap(tx.Commit(), "escrow.commit")
	if err != nil {
		rec = model.SurveyRecord{}
	}
	return
}

// Get reads a created survey back from the ledger.
func (s *Store) Get(ctx context.Context, id string) (rec model.SurveyRecord, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, title, description, reward_amount, creator, respondent_type, number_of_respondents, created_at
		FROM survey
		WHERE id = ?`,
		id,
	).Scan(
		&rec.ID, &rec.Title, &rec.Description, &rec.RewardAmount,
		&rec.Creator, &rec.RespondentType, &rec.NumberOfRespondents, &rec.CreatedAt,
	)
	if err != nil {
		err = errors.Wrap(err, "escrow.get_survey")
		return
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT text, type, options
		FROM survey_question
		WHERE survey_id = ?
		ORDER BY position`,
		id,
	)
	if err != nil {
		err = errors.Wrap(err, "escrow.get_survey.questions")
		return
	}
	defer rows.Close()

	for rows.Next() {
		q := model.Question{}
		var opts string
		err = rows.Scan(&q.Text, &q.Type, &opts)
		if err != nil {
			err = errors.Wrap(err, "escrow.get_survey.questions.scan")
			return
		}
		if opts != "" {
			err = json.Unmarshal([]byte(opts), &q.Options)
			if err != nil {
				err = errors.Wrap(err, "escrow.get_survey.questions.options")
				return
			}
		}
		rec.Questions = append(rec.Questions, q)
	}
	if err = rows.Err(); err != nil {
		err = errors.Wrap(err, "escrow.get_survey.questions.rows")
		return
	}

	screening := model.ScreeningInfo{}
	err = s.db.QueryRowContext(ctx, `
		SELECT description, requirements, flexible_scheduling, date_time, meeting_link, location, deadline
		FROM screening
		WHERE survey_id = ?`,
		id,
	).Scan(
		&screening.Description, &screening.Requirements, &screening.FlexibleScheduling,
		&screening.DateTime, &screening.MeetingLink, &screening.Location, &screening.Deadline,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		err = errors.Wrap(err, "escrow.get_screening")
		return
	default:
		rec.Screening = &screening
	}
	return
}

// List returns the created surveys without their questions or screening.
func (s *Store) List(ctx context.Context) (records []model.SurveyRecord, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, reward_amount, creator, respondent_type, number_of_respondents, created_at
		FROM survey
		ORDER BY created_at DESC`)
	if err != nil {
		err = errors.Wrap(err, "escrow.get_surveys")
		return
	}
	defer rows.Close()

	records = []model.SurveyRecord{}
	for rows.Next() {
		rec := model.SurveyRecord{}
		err = rows.Scan(
			&rec.ID, &rec.Title, &rec.Description, &rec.RewardAmount,
			&rec.Creator, &rec.RespondentType, &rec.NumberOfRespondents, &rec.CreatedAt,
		)
		if err != nil {
			err = errors.Wrap(err, "escrow.get_surveys.scan")
			return
		}
		records = append(records, rec)
	}
	err = errors.Wrap(rows.Err(), "escrow.get_surveys.rows")
	return
}
