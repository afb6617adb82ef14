package openai

const extractionPrompt = `Extract structured hiring intent from the given query and return it as JSON.

Output ONLY valid JSON with exactly these keys. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end
with the closing brace }.

Keys:
- "skills": list of required skills (e.g. "cognitive", "python", "communication")
- "traits": list of job or behavioral traits (e.g. "entry-level", "leadership", "client-facing")
- "duration_limit": maximum assessment length in minutes as an integer, or null when the query sets no limit
- "remote": true or false when the query explicitly requests or rules out remote testing, or null when it says nothing about it

Rules:
- Use null, not false or 0, for constraints the query does not mention.
- Skill and trait names must be lowercase.
- Include only what is explicitly mentioned or clearly implied. Do not hallucinate.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "I need an assessment for a client-facing role testing communication, under 45 minutes, remote"
Output:
{
  "skills": ["communication"],
  "traits": ["client-facing"],
  "duration_limit": 45,
  "remote": true
}

Example (no constraints):
Input: "something for hiring java developers"
Output:
{
  "skills": ["java"],
  "traits": [],
  "duration_limit": null,
  "remote": null
}`
