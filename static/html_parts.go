package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Диаграмма Вороного (заметающая прямая)</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
			}

			#chart {
				flex: 2;
				padding: 8px;
			}

			#logs {
				flex: 1;
				padding: 8px;
				overflow-y: scroll;
				border-left: 1px solid #3a3a3a;
				font-size: 12px;
			}

			#logs pre {
				white-space: pre-wrap;
			}
		</style>
    </head>
    <body>
	<form method="post">
		Сайтов: <input type="number" name="sites" value="64" min="1">
		Раскладка:
		<select name="layout">
			<option value="random">случайная</option>
			<option value="grid">сетка</option>
		</select>
		<input type="submit" value="Построить">
	</form>
	<div id="container">
	<div id="chart">
	`

	Part2 = `
	</div>
	<div id="logs">
	<h3>Журнал прогона</h3>
	`

	Part3 = `
	</div>
	</div>
    </body>
    </html>
	`
)
