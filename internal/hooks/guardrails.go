package hooks

const guardrailsBlock = `[oh-my-openclaw guardrails]
- Never invent file paths, APIs, flags or command output. Read or run it first.
- If you have not verified something, say so instead of presenting it as fact.
- Quote exact error messages and line numbers; do not paraphrase them into something plausible.
- Do not claim a task is done until its verification step (build, test or inspection) has passed.
- When a tool call fails, report the failure and adjust; never fabricate a successful result.`
