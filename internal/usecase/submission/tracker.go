package submission

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// OutcomeRecorder учет итогов отправки
type OutcomeRecorder interface {
	RecordOutcome(operation, outcome string)
}

// Tracker ведет одну отправку формы по машине состояний
type Tracker struct {
	operation string
	sub       *domain.Submission
	logger    Logger
}

// NewTracker начинает отправку в состоянии Draft
func NewTracker(operation string, logger Logger) *Tracker {
	return &Tracker{
		operation: operation,
		sub:       domain.NewSubmission(),
		logger:    logger,
	}
}

// Advance переводит отправку в следующее состояние
// Недопустимый переход логируется и игнорируется
func (t *Tracker) Advance(to domain.SubmissionState) {
	if err := t.sub.Advance(to); err != nil {
		t.logger.Error("%s: %v", t.operation, err)
	}
}

// Finish переводит отправку в состояние, соответствующее итогу, и учитывает итог в метриках
// Если запрос еще не был отправлен, отправка возвращается в Draft при любом итоге
func (t *Tracker) Finish(outcome domain.Outcome, recorder OutcomeRecorder) domain.Outcome {
	to := outcome.FinalState()
	if t.sub.State() != domain.StateSubmitting {
		to = domain.StateDraft
	}
	t.Advance(to)
	if recorder != nil {
		recorder.RecordOutcome(t.operation, string(outcome.Kind))
	}
	return outcome
}

// State текущее состояние
func (t *Tracker) State() domain.SubmissionState {
	return t.sub.State()
}

// History все пройденные состояния
func (t *Tracker) History() []domain.SubmissionState {
	return t.sub.History()
}
