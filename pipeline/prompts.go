package pipeline

import (
	"fmt"
	"strings"
)

// CategoryLabels is the closed label set the categorize stage asks for.
var CategoryLabels = []string{"Veg", "Non-Veg", "Fast Food", "Drinks"}

// RefusalMessage is the fixed string the guarded variant instructs the model
// to return when the submitted text is not a food or dish description.
const RefusalMessage = "Sorry, I can only generate recipes for food and drink dishes."

func categorizePrompt(dish string) string {
	return fmt.Sprintf(categorizeTemplate, dish, strings.Join(CategoryLabels, ", "))
}

func generatePrompt(dish, category string) string {
	return fmt.Sprintf(generateTemplate, dish, category)
}

func guardedPrompt(dish string) string {
	return fmt.Sprintf(guardedTemplate, dish, RefusalMessage)
}

const categorizeTemplate = `Classify the dish "%s" into exactly one of the following categories: %s.
Respond with only the category label, nothing else.`

const generateTemplate = `Write a recipe for the dish "%s" (category: %s).
Your answer must contain exactly two parts and nothing else:
1. A Markdown table of ingredients with exactly two columns: Ingredient and Quantity.
2. A numbered list of preparation steps. Start each step with the action verb in bold, e.g. "1. **Chop** the onions."
Do not add any commentary before or after.`

const guardedTemplate = `The text between the triple quotes below was submitted by a user as a dish name.

"""
%s
"""

First check that the text describes a food or drink dish. If it does not, respond with exactly this sentence and nothing else:
%s

Otherwise write a recipe for the dish. Your answer must contain exactly two parts and nothing else:
1. A Markdown table of ingredients with exactly two columns: Ingredient and Quantity.
2. A numbered list of preparation steps. Start each step with the action verb in bold, e.g. "1. **Chop** the onions."
Do not add any commentary before or after.`
