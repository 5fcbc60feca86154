package linear

const issueFields = `
	id
	identifier
	title
	priority
	url
	createdAt
	updatedAt
	state { id name type color }
	team { id key name }
	assignee { id name email displayName }
	labels { nodes { id name color } }
	project { id name }
`

const viewerQuery = `
	query Viewer {
		viewer {
			id
			name
			email
			displayName
		}
	}
`

const teamsQuery = `
	query Teams {
		teams {
			nodes {
				id
				key
				name
			}
		}
	}
`

const usersQuery = `
	query Users($first: Int) {
		users(first: $first) {
			nodes {
				id
				name
				email
				displayName
				active
			}
		}
	}
`

const labelsQuery = `
	query IssueLabels($first: Int) {
		issueLabels(first: $first) {
			nodes {
				id
				name
				color
			}
		}
	}
`

const workflowStatesQuery = `
	query WorkflowStates($filter: WorkflowStateFilter) {
		workflowStates(filter: $filter) {
			nodes {
				id
				name
				type
				color
			}
		}
	}
`

const issuesQuery = `
	query Issues($filter: IssueFilter, $first: Int, $after: String) {
		issues(filter: $filter, first: $first, after: $after, orderBy: updatedAt) {
			nodes {` + issueFields + `}
			pageInfo {
				hasNextPage
				endCursor
			}
		}
	}
`

const issueQuery = `
	query Issue($id: String!) {
		issue(id: $id) {` + issueFields + `
			description
			estimate
		}
	}
`

const issueSearchQuery = `
	query IssueSearch($query: String!, $first: Int) {
		issueSearch(query: $query, first: $first) {
			nodes {` + issueFields + `}
		}
	}
`

const issueCreateMutation = `
	mutation IssueCreate($input: IssueCreateInput!) {
		issueCreate(input: $input) {
			success
			issue {
				id
				identifier
				title
				url
			}
		}
	}
`

const issueUpdateMutation = `
	mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
		issueUpdate(id: $id, input: $input) {
			success
			issue {
				id
				identifier
				title
				url
			}
		}
	}
`
