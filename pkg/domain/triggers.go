package domain

// Literal reply-keyboard texts that re-enter command flows. They are matched
// exactly, before any stage-bound text handler gets a chance.
const (
	TriggerFinish      = "Закончить"
	TriggerAnotherFact = "Хочу ещё факт"
	TriggerSayGoodbye  = "Попрощаться!"
)
