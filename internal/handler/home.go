package handler

import "net/http"

const welcomePage = `<!DOCTYPE html>
<html>
    <head>
        <title>Search Proxy</title>
    </head>
    <body>
        <h1>Welcome to this Search Proxy</h1>
        <p>Register via <code>POST /register</code>, fetch a bearer token via <code>POST /token</code>.</p>
        <p>Search with Basic auth at <code>/&lt;query&gt;</code> or with a bearer token at <code>POST /jwt/&lt;query&gt;</code>.</p>
        <form>
            <input id="search-query" type="text" value="Bosch">
            <input id="search-button" type="button" value="Search">
        </form>
        <script type="text/javascript">
            const button = document.querySelector('#search-button');
            const input = document.querySelector('#search-query');
            button.addEventListener('click', () => {
                window.open('/' + input.value, '_blank');
            });
        </script>
    </body>
</html>
`

// HandleHome renders the welcome page with a Basic-auth search box.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(welcomePage))
}
