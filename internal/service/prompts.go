package service

// Prompts sent through the generative boundary. Kept in Spanish to match the
// interview vocabulary; every response is validated against the closed enum
// sets before use.

const classifyPrompt = `Clasifica el siguiente caso en UN SOLO tema dominante, eligiendo EXACTAMENTE uno:
- survival_stability
- ethics_values
- external_pressure

Responde SOLO con el identificador.

Caso: %s
`

const decisionObjectPrompt = `Reformula en UNA sola frase clara el objeto de la decisión.
Debe describir QUÉ se decide y, si aplica, la tensión central.
No moralices. No aconsejes.

Tema dominante: %s
Afirmación original: %s
Fundamento (texto): %s
Contexto (texto): %s
Principio (texto): %s

Salida: una sola frase.
`

const softContradictionPrompt = `Analiza el siguiente texto y detecta tensiones internas (contradicciones blandas).

Responde EXCLUSIVAMENTE con un arreglo JSON. Cada elemento:
{"type":"...","severity":"...","affected_axes":["..."],"note":"...","suggested_action":"..."}

Valores permitidos:
- type: normative_vs_evidence, urgency_mismatch, goal_vs_costs, preservation_mismatch, time_horizon_mismatch, alternatives_ignored, causal_attribution_drift, semantic_ambiguity, value_conflict, agency_externalization
- severity: low, medium, high
- affected_axes: foundation, context, principle
- suggested_action: note_only, reframe, ask_followup, lower_confidence, stop_and_refine

Si no hay tensiones, responde [].
No incluyas texto adicional, ni Markdown, ni explicaciones.

Texto:
%s
`
