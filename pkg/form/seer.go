package form

// SEER returns the built-in breast-cancer survival form: the fourteen encoded
// features the reference model consumes, in the exact order it expects them.
func SEER() Definition {
	return Definition{
		Name: "seer-breast-cancer",
		Fields: []Field{
			{
				Name:   "Age",
				Label:  "Age",
				Kind:   FieldKindNumeric,
				Bounds: &Bounds{Min: 18, Max: 120},
				Help:   "Patient age in years.",
			},
			{
				Name:  "Race",
				Label: "Race",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "Race 0"},
					{Value: 1, Label: "Race 1"},
					{Value: 2, Label: "Race 2"},
					{Value: 3, Label: "Race 3"},
				},
			},
			{
				Name:  "Marital",
				Label: "Marital status",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "Single"},
					{Value: 1, Label: "Married"},
					{Value: 2, Label: "Other"},
				},
			},
			{
				Name:  "Tstage",
				Label: "T stage",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "T0"},
					{Value: 1, Label: "T1"},
					{Value: 2, Label: "T2"},
					{Value: 3, Label: "T3"},
				},
			},
			{
				Name:  "Nstage",
				Label: "N stage",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "N0"},
					{Value: 1, Label: "N1"},
					{Value: 2, Label: "N2"},
					{Value: 3, Label: "N3"},
				},
			},
			{
				Name:  "Stage6",
				Label: "6th edition stage",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "Stage 0"},
					{Value: 1, Label: "Stage I"},
					{Value: 2, Label: "Stage II"},
					{Value: 3, Label: "Stage III"},
					{Value: 4, Label: "Stage IV"},
				},
			},
			{
				Name:  "Diff",
				Label: "Differentiation",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "Differentiation 0"},
					{Value: 1, Label: "Differentiation 1"},
					{Value: 2, Label: "Differentiation 2"},
				},
			},
			{
				Name:  "Grade",
				Label: "Grade",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 1, Label: "Grade I"},
					{Value: 2, Label: "Grade II"},
					{Value: 3, Label: "Grade III"},
				},
			},
			{
				Name:  "Astage",
				Label: "A stage",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "A0"},
					{Value: 1, Label: "A1"},
					{Value: 2, Label: "A2"},
				},
			},
			{
				Name:   "Tumor",
				Label:  "Tumor size",
				Kind:   FieldKindNumeric,
				Bounds: &Bounds{Min: 0, Max: 200},
				Help:   "Tumor size in millimeters.",
			},
			{
				Name:  "Estrogen",
				Label: "Estrogen status",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "Negative"},
					{Value: 1, Label: "Positive"},
				},
			},
			{
				Name:  "Progesterone",
				Label: "Progesterone status",
				Kind:  FieldKindChoice,
				Choices: []Choice{
					{Value: 0, Label: "Negative"},
					{Value: 1, Label: "Positive"},
				},
			},
			{
				Name:   "Examined",
				Label:  "Nodes examined",
				Kind:   FieldKindNumeric,
				Bounds: &Bounds{Min: 0, Max: 1000},
			},
			{
				Name:   "Positive",
				Label:  "Nodes positive",
				Kind:   FieldKindNumeric,
				Bounds: &Bounds{Min: 0, Max: 1000},
			},
		},
	}
}
