package domain

import "testing"

func TestEnsureEvaluationDefaults(t *testing.T) {
	obj := &DiscernmentObject{
		OriginalStatement: "Quiero cambiar de trabajo",
		Foundation:        FoundationBlock{FactsKey: "Tengo una oferta concreta"},
	}

	obj.EnsureEvaluationDefaults()

	if obj.Foundation.Clarity != ClarityMedium {
		t.Errorf("clarity = %s, want %s", obj.Foundation.Clarity, ClarityMedium)
	}
	if obj.Principle.Alignment != ClarityMedium {
		t.Errorf("alignment = %s, want %s", obj.Principle.Alignment, ClarityMedium)
	}
	if obj.Context.TimeHorizon != HorizonMedium {
		t.Errorf("time horizon = %s, want %s", obj.Context.TimeHorizon, HorizonMedium)
	}
	if obj.Completeness != CompletenessPartial {
		t.Errorf("completeness = %s, want %s", obj.Completeness, CompletenessPartial)
	}
}

func TestEnsureEvaluationDefaultsKeepsSuppliedValues(t *testing.T) {
	obj := &DiscernmentObject{
		OriginalStatement: "Quiero cambiar de trabajo",
		Foundation:        FoundationBlock{FactsKey: "Hechos", Clarity: ClarityHigh},
		Context:           ContextBlock{TimeHorizon: HorizonLong},
		Principle:         PrincipleBlock{Alignment: ClarityLow},
		Completeness:      CompletenessComplete,
	}

	obj.EnsureEvaluationDefaults()

	if obj.Foundation.Clarity != ClarityHigh || obj.Context.TimeHorizon != HorizonLong ||
		obj.Principle.Alignment != ClarityLow || obj.Completeness != CompletenessComplete {
		t.Errorf("supplied values were overwritten: %+v", obj)
	}
}
