// Package projection transforma os parâmetros do negócio em coortes mensais de
// parceiros, um razão mensal de unidades e camadas de margem, e os KPIs
// derivados deles.
//
// Todas as funções aqui são puras: sem I/O, sem estado compartilhado, e os mesmos
// parâmetros sempre produzem o mesmo resultado. Valores monetários são calculados
// com shopspring/decimal e arredondados para duas casas, metade para longe do
// zero, só quando a linha é materializada.
package projection
