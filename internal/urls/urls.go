package urls

// External URLs used in output and troubleshooting tips.

// DefaultTemplateRepo is the owner/repo hosting template release bundles.
const DefaultTemplateRepo = "Soft-wa-re/forge-loop-templates"

// RateLimitDocs explains GitHub API rate limits and authenticated quotas.
const RateLimitDocs = "https://docs.github.com/en/rest/using-the-rest-api/rate-limits-for-the-rest-api"

// TokenDocs explains creating a personal access token for higher limits.
const TokenDocs = "https://docs.github.com/en/authentication/keeping-your-account-and-data-secure/managing-your-personal-access-tokens"

// ProjectDocs is the getting-started guide for scaffolded projects.
const ProjectDocs = "https://soft-wa-re.github.io/forge-loop/getting-started/"
