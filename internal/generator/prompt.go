package generator

import (
	"fmt"
)

// systemPrompt is the fixed system instruction sent on every generation call.
const systemPrompt = `You are an expert full-stack developer and UI/UX designer.
Create professional, production-ready code with:

ESSENTIAL REQUIREMENTS:
1. MODERN, RESPONSIVE DESIGN
2. CLEAN, MAINTAINABLE CODE
3. PROPER ERROR HANDLING
4. ACCESSIBILITY STANDARDS
5. CROSS-BROWSER COMPATIBILITY
6. PERFORMANCE OPTIMIZATION

TECHNICAL STANDARDS:
- Semantic HTML5
- CSS3 with Flexbox/Grid
- Vanilla JavaScript (ES6+)
- Mobile-first approach
- SEO best practices
- Security considerations

DESIGN PRINCIPLES:
- Clean, modern aesthetics
- Intuitive user experience
- Consistent color scheme
- Proper typography hierarchy
- Smooth animations
- Professional layout

Return ONLY valid JSON with this exact structure:
{
    "html": "complete HTML code with comments",
    "css": "complete CSS with responsive design",
    "js": "clean JavaScript with error handling",
    "documentation": "brief setup instructions"
}`

// userPromptTemplate embeds the description and requirement hints together
// with the fixed presentation constraints.
const userPromptTemplate = `
PROJECT REQUEST:
%s

ADDITIONAL REQUIREMENTS:
%s

SPECIFIC INSTRUCTIONS:
- Use Arabic language support (dir='rtl', lang='ar')
- Implement modern, professional design
- Include responsive navigation
- Add smooth animations
- Ensure fast loading
- Follow accessibility guidelines
- Use semantic HTML structure
- Include proper error handling
- Optimize for performance
- Add relevant meta tags

Please provide complete, production-ready code.
`

// BuildPrompts returns the system and user instructions for a run. The pair
// is deterministic for the same inputs.
func BuildPrompts(description, requirements string) (string, string) {
	if requirements == "" {
		requirements = "Standard professional implementation"
	}
	return systemPrompt, fmt.Sprintf(userPromptTemplate, description, requirements)
}
