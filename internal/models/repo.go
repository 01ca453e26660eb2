package models

// RepoData is the normalized code-repository summary.
type RepoData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	LastCommit  string `json:"lastCommit"`
	URL         string `json:"url"`
	Language    string `json:"language,omitempty"`
}

// Repo is the subset of a /repos/{owner}/{repo} response we consume.
type Repo struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	PushedAt        string `json:"pushed_at"`
	Language        string `json:"language"`
}

// RepoCommit is one entry of a /repos/{owner}/{repo}/commits response.
type RepoCommit struct {
	Commit struct {
		Committer struct {
			Date string `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}
