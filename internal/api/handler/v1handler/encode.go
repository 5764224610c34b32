package v1handler

import (
	"pricewatch/pkg/domain"
	"time"

	"github.com/go-faster/jx"
)

func encodeTime(e *jx.Encoder, field string, t time.Time) {
	if t.IsZero() {
		return
	}
	e.FieldStart(field)
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeOptStr(e *jx.Encoder, field, v string) {
	if v == "" {
		return
	}
	e.FieldStart(field)
	e.Str(v)
}

func encodeResult(e *jx.Encoder, r *domain.CheckResult) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("runId")
		e.Str(r.RunID.String())
		e.FieldStart("productId")
		e.Str(r.ProductID.String())
		e.FieldStart("observedPriceRaw")
		e.Str(r.ObservedPriceRaw)
		if r.ObservedPrice != nil {
			// decimal strings are valid JSON numbers
			e.FieldStart("observedPrice")
			e.Num(jx.Num(r.ObservedPrice.String()))
		}
		encodeOptStr(e, "currencyAssumed", r.CurrencyAssumed)
		if len(r.ExtraMatches) > 0 {
			e.FieldStart("extraMatches")
			e.ArrStart()
			for _, m := range r.ExtraMatches {
				e.Str(m)
			}
			e.ArrEnd()
		}
		encodeOptStr(e, "decision", string(r.Decision))
		e.FieldStart("matched")
		e.Bool(r.Matched)
		e.FieldStart("notified")
		e.Bool(r.Notified)
		encodeOptStr(e, "errorKind", string(r.ErrorKind))
		encodeOptStr(e, "errorMessage", r.ErrorMessage)
		encodeTime(e, "timestamp", r.CheckedAt)
	})
}

func encodeResults(e *jx.Encoder, results []domain.CheckResult) {
	e.ArrStart()
	for i := range results {
		encodeResult(e, &results[i])
	}
	e.ArrEnd()
}

func encodeRun(e *jx.Encoder, run *domain.BatchRun) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("id")
		e.Str(run.ID.String())
		e.FieldStart("trigger")
		e.Str(string(run.Trigger))
		e.FieldStart("status")
		e.Str(string(run.Status))
		if len(run.ProductFilter) > 0 {
			e.FieldStart("productIds")
			e.ArrStart()
			for _, id := range run.ProductFilter {
				e.Str(id.String())
			}
			e.ArrEnd()
		}
		encodeTime(e, "createdAt", run.CreatedAt)
		encodeTime(e, "startedAt", run.StartedAt)
		encodeTime(e, "finishedAt", run.FinishedAt)
		e.FieldStart("succeededCount")
		e.Int(run.SucceededCount)
		e.FieldStart("failedCount")
		e.Int(run.FailedCount)
		encodeOptStr(e, "lastError", run.LastError)
		if run.Status == domain.RunStatusCompleted {
			e.FieldStart("results")
			encodeResults(e, run.Results)
		}
	})
}
