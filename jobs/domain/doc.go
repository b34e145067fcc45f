// Package domain define contratos e tipos de domínio para o gerenciador de jobs
// em segundo plano.
//
// Este pacote não depende de goroutines, channels de implementação nem de
// infraestrutura concreta. A intenção é permitir testes de unidade puros e
// desacoplar as regras (vagas, estatísticas, erros) dos detalhes de execução.
package domain
