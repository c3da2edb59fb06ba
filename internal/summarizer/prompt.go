package summarizer

import (
	"fmt"
	"sort"
)

// DefaultCategories is the built-in category -> emphasis instruction map.
var DefaultCategories = map[string]string{
	"정치":    "정치인의 인용을 위주로 요약하세요.",
	"경제":    "화폐 단위와 수치, 과거 기간 또는 다른 나라와의 비교를 강조하여 요약하세요.",
	"사건/사고": "언제, 어디서, 어떻게 일어난 사건인지 육하원칙을 중심으로 명확히 요약하세요.",
}

const systemPromptTemplate = "당신은 긴 기사를 방송용 짧은 기사 3줄로 요약해주는 도우미입니다. %s " +
	"우선 전체 요약된 내용을 한 줄 30글자 내로 제목으로 뽑아서 출력된 단신 맨 위에 표시해. " +
	"문장의 끝은 '했습니다' 또는 '입니다' 등 공손한 말투로 마무리해. " +
	"그리고 한 문장이 끝나면 한 줄을 띄우고 다음 문장을 출력해."

// Prompts is the read-only category prompt map. Build it once at startup.
type Prompts struct {
	instructions map[string]string
}

// NewPrompts merges overrides on top of DefaultCategories. Empty override
// values remove a category.
func NewPrompts(overrides map[string]string) Prompts {
	m := make(map[string]string, len(DefaultCategories)+len(overrides))
	for k, v := range DefaultCategories {
		m[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(m, k)
			continue
		}
		m[k] = v
	}
	return Prompts{instructions: m}
}

// Instruction returns the emphasis instruction for category.
func (p Prompts) Instruction(category string) (string, bool) {
	v, ok := p.instructions[category]
	return v, ok
}

// Categories lists the known labels in sorted order.
func (p Prompts) Categories() []string {
	out := make([]string, 0, len(p.instructions))
	for k := range p.instructions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SystemPrompt builds the system instruction for category.
func (p Prompts) SystemPrompt(category string) (string, error) {
	instruction, ok := p.Instruction(category)
	if !ok {
		return "", fmt.Errorf("unknown category %q", category)
	}
	return fmt.Sprintf(systemPromptTemplate, instruction), nil
}
